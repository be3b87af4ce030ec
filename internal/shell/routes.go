package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Screen names one destination in the app.
type Screen string

// All destinations. The parameterized ones take an integer id segment.
const (
	ScreenLogin            Screen = "login"
	ScreenMenu             Screen = "menu"
	ScreenHome             Screen = "home"
	ScreenMarket           Screen = "market"
	ScreenCategoryDetail   Screen = "categoryDetail"
	ScreenProductDetail    Screen = "productDetail"
	ScreenCreateProduct    Screen = "createProduct"
	ScreenShop             Screen = "shop"
	ScreenShopDetail       Screen = "shopDetail"
	ScreenForum            Screen = "forum"
	ScreenForumDetail      Screen = "forumDetail"
	ScreenWishlist         Screen = "wishlist"
	ScreenWishlistCategory Screen = "wishlistCategory"
	ScreenComplaints       Screen = "complaints"
	ScreenComplaintsDetail Screen = "complaintsDetail"
	ScreenRewards          Screen = "rewards"
	ScreenRewardsDetail    Screen = "rewardsDetail"
	ScreenNews             Screen = "news"
	ScreenNewsDetail       Screen = "newsDetail"
	ScreenForms            Screen = "forms"
)

// routeTable maps each screen to whether it takes an id segment.
var routeTable = map[Screen]bool{
	ScreenLogin:            false,
	ScreenMenu:             false,
	ScreenHome:             false,
	ScreenMarket:           false,
	ScreenCategoryDetail:   true,
	ScreenProductDetail:    true,
	ScreenCreateProduct:    false,
	ScreenShop:             false,
	ScreenShopDetail:       true,
	ScreenForum:            false,
	ScreenForumDetail:      true,
	ScreenWishlist:         false,
	ScreenWishlistCategory: true,
	ScreenComplaints:       false,
	ScreenComplaintsDetail: true,
	ScreenRewards:          false,
	ScreenRewardsDetail:    true,
	ScreenNews:             false,
	ScreenNewsDetail:       true,
	ScreenForms:            false,
}

// Route is one parsed destination.
type Route struct {
	Screen Screen
	ID     int // Meaningful only for parameterized screens
}

// Path renders the route back to its string form.
func (r Route) Path() string {
	if routeTable[r.Screen] {
		return string(r.Screen) + "/" + strconv.Itoa(r.ID)
	}
	return string(r.Screen)
}

// ParseRoute parses a path like "menu" or "productDetail/7".
func ParseRoute(path string) (Route, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	screen := Screen(parts[0])
	wantsID, ok := routeTable[screen]
	if !ok {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}
	if !wantsID {
		if len(parts) != 1 {
			return Route{}, fmt.Errorf("route %q takes no id", parts[0])
		}
		return Route{Screen: screen}, nil
	}
	if len(parts) != 2 {
		return Route{}, fmt.Errorf("route %q needs an id", parts[0])
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return Route{}, fmt.Errorf("route %q: bad id %q", parts[0], parts[1])
	}
	return Route{Screen: screen, ID: id}, nil
}

// MenuEntry is one drawer item.
type MenuEntry struct {
	Label string
	Route Route
}

// DrawerMenu lists the side-drawer destinations in display order.
func DrawerMenu() []MenuEntry {
	return []MenuEntry{
		{Label: "Home", Route: Route{Screen: ScreenHome}},
		{Label: "School Shop", Route: Route{Screen: ScreenShop}},
		{Label: "Student Forum", Route: Route{Screen: ScreenForum}},
		{Label: "Wishlist", Route: Route{Screen: ScreenWishlist}},
		{Label: "Complaints", Route: Route{Screen: ScreenComplaints}},
		{Label: "School Form", Route: Route{Screen: ScreenForms}},
		{Label: "Rewards", Route: Route{Screen: ScreenRewards}},
		{Label: "News", Route: Route{Screen: ScreenNews}},
		{Label: "Creative Market", Route: Route{Screen: ScreenMarket}},
	}
}
