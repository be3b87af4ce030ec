package api

// StatusSuccess is the only status value the backend treats as success;
// everything else carries a human-readable message instead of data.
const StatusSuccess = "success"

// Envelope is the shared response wrapper {status, data?, message?}. A nil
// Data on a success response means an empty result, not an error.
type Envelope[T any] struct {
	Status  string `json:"status"`  // "success" or an error tag
	Data    *T     `json:"data"`    // Payload, absent on failure
	Message string `json:"message"` // Optional human-readable message
}

// OK reports whether the backend accepted the request.
func (e Envelope[T]) OK() bool {
	return e.Status == StatusSuccess
}

// ResponseStatus is the bare ack returned by create/reply endpoints.
type ResponseStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the backend accepted the request.
func (r ResponseStatus) OK() bool {
	return r.Status == StatusSuccess
}

// AuthResult is the access-code verification response. The user fields are
// pointers because the backend omits them on a failed code.
type AuthResult struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	UserID    *int    `json:"user_id"`
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	ClassName *string `json:"className"`
}

// OK reports whether the code was accepted.
func (a AuthResult) OK() bool {
	return a.Status == StatusSuccess
}

// NewsResult uses a bespoke top-level "news" field instead of "data".
type NewsResult struct {
	Status string     `json:"status"`
	News   []NewsItem `json:"news"`
}

// ShopResult uses a bespoke top-level "products" field instead of "data".
type ShopResult struct {
	Status   string        `json:"status"`
	Products []ShopProduct `json:"products"`
}

// SchoolFormResult uses a bespoke top-level "form" field instead of "data".
type SchoolFormResult struct {
	Status string     `json:"status"`
	Form   SchoolForm `json:"form"`
}

// ForumCategory is one forum topic grouping.
type ForumCategory struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// ForumPost is one post inside a forum category.
type ForumPost struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"categoryId"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Timestamp  string `json:"timestamp"`
}

// NewsItem is one news entry.
type NewsItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// SchoolForm is the single school-form document; Content is HTML.
type SchoolForm struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// ShopProduct is a legacy shop item (shop.php).
type ShopProduct struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	ImageURL      string   `json:"imageUrl"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"` // nil when no discount
	Rating        float32  `json:"rating"`
	Description   string   `json:"description"`
}

// ComplaintItem is one complaint, in both list and detail responses.
type ComplaintItem struct {
	ID        int    `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// RewardItem is one reward, in both list and detail responses.
type RewardItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// WishlistCategory groups wishlist items (e.g. class, school, canteen).
type WishlistCategory struct {
	ID       int    `json:"id"`
	ImageURL string `json:"imageUrl"`
	Name     string `json:"name"`
}

// WishlistItem is one wish inside a category.
type WishlistItem struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// MarketCategory is one market category tile.
type MarketCategory struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// UserRef identifies the owner of a market product.
type UserRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MarketProduct is one market item. DiscountPrice, when present and > 0,
// overrides the displayed price; CategoryID and User may be absent.
type MarketProduct struct {
	ID            int      `json:"id"`
	Rating        int      `json:"rating"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    *int     `json:"categoryId"`
	User          *UserRef `json:"user"`
}
