// Package shell is the navigation layer: a route table over the app's
// screens and a read-eval loop that mounts one screen at a time, fetches its
// data, renders it and dispatches user actions.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"schoolhub/internal/api"
	"schoolhub/internal/flows"
	"schoolhub/internal/market"
	"schoolhub/internal/session"
)

// Shell drives the whole client: one screen mounted at a time, every user
// action a fresh request, every failure degrading to an empty or stale view.
type Shell struct {
	api   *api.Client
	store *session.Store
	sess  session.Session
	log   logrus.FieldLogger
	in    *bufio.Scanner
	out   io.Writer
}

// New builds the shell. The session is restored from the preference store;
// the login screen refreshes it after a successful code exchange.
func New(client *api.Client, store *session.Store, log logrus.FieldLogger, in io.Reader, out io.Writer) *Shell {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Shell{
		api:   client,
		store: store,
		sess:  session.FromStore(store),
		log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops over screens until the user quits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	current := Route{Screen: ScreenMenu}
	if !s.sess.LoggedIn() {
		current = Route{Screen: ScreenLogin}
	}
	for {
		next, quit := s.visit(ctx, current)
		if quit {
			return nil
		}
		current = next
	}
}

// visit mounts one screen and returns the next route.
func (s *Shell) visit(ctx context.Context, r Route) (Route, bool) {
	switch r.Screen {
	case ScreenLogin:
		return s.visitLogin(ctx)
	case ScreenMenu:
		return s.visitMenu()
	case ScreenHome:
		return s.visitHome()
	case ScreenMarket:
		return s.visitMarket(ctx)
	case ScreenCategoryDetail:
		return s.visitCategoryDetail(ctx, r.ID)
	case ScreenProductDetail:
		return s.visitProductDetail(ctx, r.ID)
	case ScreenCreateProduct:
		return s.visitCreateProduct(ctx)
	case ScreenShop:
		return s.visitShop(ctx)
	case ScreenShopDetail:
		return s.visitShopDetail(ctx, r.ID)
	case ScreenForum:
		return s.visitForum(ctx)
	case ScreenForumDetail:
		return s.visitForumDetail(ctx, r.ID)
	case ScreenWishlist:
		return s.visitWishlist(ctx)
	case ScreenWishlistCategory:
		return s.visitWishlistCategory(ctx, r.ID)
	case ScreenComplaints:
		return s.visitComplaints(ctx)
	case ScreenComplaintsDetail:
		return s.visitComplaintsDetail(ctx, r.ID)
	case ScreenRewards:
		return s.visitRewards(ctx)
	case ScreenRewardsDetail:
		return s.visitRewardsDetail(ctx, r.ID)
	case ScreenNews:
		return s.visitNews(ctx)
	case ScreenNewsDetail:
		return s.visitNewsDetail(ctx, r.ID)
	case ScreenForms:
		return s.visitForms(ctx)
	default:
		fmt.Fprintf(s.out, "unknown screen %q\n", r.Screen)
		return Route{Screen: ScreenMenu}, false
	}
}

// readLine reads one trimmed input line; false means input ended.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// prompt reads a command on a screen. It resolves the common navigation
// words itself and hands everything else back to the caller.
func (s *Shell) prompt(back Route) (cmd string, next Route, navigated, quit bool) {
	line, ok := s.readLine("> ")
	if !ok || line == "quit" || line == "exit" {
		return "", Route{}, false, true
	}
	switch line {
	case "back":
		return "", back, true, false
	case "menu":
		return "", Route{Screen: ScreenMenu}, true, false
	}
	if r, err := ParseRoute(line); err == nil {
		return "", r, true, false
	}
	return line, Route{}, false, false
}

func (s *Shell) visitLogin(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Login ==")
	code, ok := s.readLine("access code (empty to quit): ")
	if !ok || code == "" {
		return Route{}, true
	}
	res, err := s.api.VerifyCode(ctx, code)
	if err != nil {
		fmt.Fprintln(s.out, "could not reach the server, try again")
		return Route{Screen: ScreenLogin}, false
	}
	if res.Message != "" {
		fmt.Fprintln(s.out, res.Message)
	}
	if !res.OK() {
		return Route{Screen: ScreenLogin}, false
	}
	// Missing fields fall back to the store defaults, as the app always did
	id := session.DefaultUserID
	if res.UserID != nil {
		id = *res.UserID
	}
	name := session.DefaultName
	if res.Name != nil {
		name = *res.Name
	}
	role := session.DefaultRole
	if res.Role != nil {
		role = *res.Role
	}
	class := session.DefaultClass
	if res.ClassName != nil {
		class = *res.ClassName
	}
	if err := s.store.SaveUser(id, name, role, class); err != nil {
		s.log.WithField("error", err.Error()).Warn("Failed to persist user")
	}
	s.sess = session.FromStore(s.store)
	return Route{Screen: ScreenMenu}, false
}

func (s *Shell) visitMenu() (Route, bool) {
	fmt.Fprintf(s.out, "== Menu ==  (%s, %s)\n", s.sess.Name, s.sess.Role)
	entries := DrawerMenu()
	for i, e := range entries {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, e.Label)
	}
	fmt.Fprintln(s.out, "  type a number, a route, or quit")
	for {
		line, ok := s.readLine("> ")
		if !ok || line == "quit" || line == "exit" {
			return Route{}, true
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(entries) {
			return entries[n-1].Route, false
		}
		if r, err := ParseRoute(line); err == nil {
			return r, false
		}
		fmt.Fprintln(s.out, "unrecognized choice")
	}
}

func (s *Shell) visitHome() (Route, bool) {
	fmt.Fprintln(s.out, "== Home ==")
	fmt.Fprintf(s.out, "  user:  %s\n", s.sess.Name)
	fmt.Fprintf(s.out, "  role:  %s\n", s.sess.Role)
	if s.sess.Class != "" {
		fmt.Fprintf(s.out, "  class: %s\n", s.sess.Class)
	}
	for {
		_, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		fmt.Fprintln(s.out, "commands: back, menu, quit")
	}
}

func (s *Shell) visitMarket(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Market ==")
	vm := market.NewCategories(s.api, s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderMarketCategories(s.out, vm.Items())
	fmt.Fprintln(s.out, "commands: open <id>, createProduct, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenCategoryDetail, ID: id}, false
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitCategoryDetail(ctx context.Context, categoryID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Category %d ==\n", categoryID)
	vm := market.NewProductList(s.api, s.sess, categoryID, s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderProducts(s.out, vm.Visible(), s.sess)
	fmt.Fprintln(s.out, "commands: search <text>, sort <none|priceAsc|priceDesc|rating>, clear, open <id>, delete <id>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMarket})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		switch {
		case strings.HasPrefix(cmd, "search "):
			vm.Query = strings.TrimSpace(strings.TrimPrefix(cmd, "search "))
			renderProducts(s.out, vm.Visible(), s.sess)
		case strings.HasPrefix(cmd, "sort "):
			mode, ok := parseSortMode(strings.TrimSpace(strings.TrimPrefix(cmd, "sort ")))
			if !ok {
				fmt.Fprintln(s.out, "unknown sort mode")
				continue
			}
			vm.Sort = mode
			renderProducts(s.out, vm.Visible(), s.sess)
		case cmd == "clear":
			vm.ClearFilter()
			renderProducts(s.out, vm.Visible(), s.sess)
		default:
			if id, ok := argOf(cmd, "open"); ok {
				return Route{Screen: ScreenProductDetail, ID: id}, false
			}
			if id, ok := argOf(cmd, "delete"); ok {
				if err := vm.Delete(ctx, id); err != nil {
					fmt.Fprintln(s.out, err.Error())
				}
				renderProducts(s.out, vm.Visible(), s.sess)
				continue
			}
			fmt.Fprintln(s.out, "unrecognized command")
		}
	}
}

func (s *Shell) visitProductDetail(ctx context.Context, productID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Product %d ==\n", productID)
	vm := market.NewDetail(s.api, s.log)
	defer vm.Close()
	vm.Load(ctx, productID)
	renderProductDetail(s.out, vm.Product())
	return s.waitForNav(Route{Screen: ScreenMarket})
}

func (s *Shell) visitCreateProduct(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== New product ==")
	form := market.NewCreateForm(s.api, s.sess, s.log)
	defer form.Close()
	form.LoadCategories(ctx)
	renderMarketCategories(s.out, form.Categories())
	for {
		title, ok := s.readLine("title: ")
		if !ok {
			return Route{}, true
		}
		desc, ok := s.readLine("description: ")
		if !ok {
			return Route{}, true
		}
		price, ok := s.readLine("price: ")
		if !ok {
			return Route{}, true
		}
		discount, ok := s.readLine("discount price (optional): ")
		if !ok {
			return Route{}, true
		}
		catStr, ok := s.readLine("category id: ")
		if !ok {
			return Route{}, true
		}
		imagePath, ok := s.readLine("image file: ")
		if !ok {
			return Route{}, true
		}
		catID, _ := strconv.Atoi(catStr)
		var image []byte
		if imagePath != "" {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				fmt.Fprintln(s.out, "could not read image file")
			} else {
				image = data
			}
		}
		form.Draft = market.Draft{
			Title:         title,
			Description:   desc,
			Price:         price,
			DiscountPrice: discount,
			CategoryID:    catID,
			ImageName:     imagePath,
			Image:         image,
		}
		backTo, err := form.Submit(ctx)
		fmt.Fprintln(s.out, form.Message)
		if err == nil {
			// Back to the category list; its own fetch shows the new product
			return Route{Screen: ScreenCategoryDetail, ID: backTo}, false
		}
		retry, ok := s.readLine("try again? (y/n): ")
		if !ok || retry != "y" {
			return Route{Screen: ScreenMarket}, false
		}
	}
}

func (s *Shell) visitShop(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Shop ==")
	vm := flows.NewListView(func(ctx context.Context) ([]api.ShopProduct, error) {
		res, err := s.api.ShopProducts(ctx)
		if err != nil {
			return nil, err
		}
		if res.Status != api.StatusSuccess {
			return nil, fmt.Errorf("shop: status %s", res.Status)
		}
		return res.Products, nil
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderEntries(s.out, vm.Entries(), func(p api.ShopProduct) string {
		price := p.Price
		if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
			price = *p.DiscountPrice
		}
		return fmt.Sprintf("[%d] %s — %.0f", p.ID, p.Name, price)
	})
	fmt.Fprintln(s.out, "commands: open <id>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenShopDetail, ID: id}, false
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitShopDetail(ctx context.Context, productID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Shop item %d ==\n", productID)
	// The shop has no detail endpoint; the list is fetched and searched
	vm := flows.NewDetailView(func(ctx context.Context) (*api.ShopProduct, error) {
		res, err := s.api.ShopProducts(ctx)
		if err != nil {
			return nil, err
		}
		for i := range res.Products {
			if res.Products[i].ID == productID {
				return &res.Products[i], nil
			}
		}
		return nil, nil
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	if p := vm.Item(); p != nil {
		fmt.Fprintf(s.out, "  %s\n", p.Name)
		fmt.Fprintf(s.out, "  price: %.0f\n", p.Price)
		if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
			fmt.Fprintf(s.out, "  discounted: %.0f\n", *p.DiscountPrice)
		}
		fmt.Fprintf(s.out, "  %s\n", p.Description)
	} else {
		fmt.Fprintln(s.out, "  (item unavailable)")
	}
	return s.waitForNav(Route{Screen: ScreenShop})
}

func (s *Shell) visitForum(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Forum ==")
	vm := flows.NewListView(envelopeList(s.api.ForumCategories), s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderEntries(s.out, vm.Entries(), func(c api.ForumCategory) string {
		return fmt.Sprintf("[%d] %s — %s", c.ID, c.Title, c.Author)
	})
	fmt.Fprintln(s.out, "commands: open <id>, new <title>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenForumDetail, ID: id}, false
		}
		if title := strings.TrimSpace(strings.TrimPrefix(cmd, "new ")); strings.HasPrefix(cmd, "new ") && title != "" {
			res, err := s.api.CreateForumCategory(ctx, title)
			if err != nil {
				fmt.Fprintln(s.out, "could not create category")
				continue
			}
			if res.OK() {
				vm.AppendProvisional(api.ForumCategory{Title: title, Author: s.sess.Name})
			} else if res.Message != "" {
				fmt.Fprintln(s.out, res.Message)
			}
			renderEntries(s.out, vm.Entries(), func(c api.ForumCategory) string {
				return fmt.Sprintf("[%d] %s — %s", c.ID, c.Title, c.Author)
			})
			continue
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitForumDetail(ctx context.Context, categoryID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Forum topic %d ==\n", categoryID)
	vm := flows.NewListView(func(ctx context.Context) ([]api.ForumPost, error) {
		env, err := s.api.ForumPosts(ctx, categoryID)
		return unwrapList(env, err)
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	line := func(p api.ForumPost) string {
		return fmt.Sprintf("%s (%s): %s", p.Author, p.Timestamp, p.Content)
	}
	renderEntries(s.out, vm.Entries(), line)
	fmt.Fprintln(s.out, "commands: reply <text>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenForum})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if text := strings.TrimSpace(strings.TrimPrefix(cmd, "reply ")); strings.HasPrefix(cmd, "reply ") && text != "" {
			res, err := s.api.SendForumReply(ctx, categoryID, text)
			if err != nil {
				fmt.Fprintln(s.out, "could not send reply")
				continue
			}
			if res.OK() {
				vm.AppendProvisional(api.ForumPost{
					CategoryID: categoryID,
					Content:    text,
					Author:     s.sess.Name,
					Timestamp:  flows.PlaceholderTimestamp,
				})
			} else if res.Message != "" {
				fmt.Fprintln(s.out, res.Message)
			}
			renderEntries(s.out, vm.Entries(), line)
			continue
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitWishlist(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Wishlist ==")
	vm := flows.NewListView(envelopeList(s.api.WishlistCategories), s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderEntries(s.out, vm.Entries(), func(c api.WishlistCategory) string {
		return fmt.Sprintf("[%d] %s", c.ID, c.Name)
	})
	fmt.Fprintln(s.out, "commands: open <id>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenWishlistCategory, ID: id}, false
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitWishlistCategory(ctx context.Context, categoryID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Wishes %d ==\n", categoryID)
	vm := flows.NewListView(func(ctx context.Context) ([]api.WishlistItem, error) {
		env, err := s.api.Wishlist(ctx, categoryID)
		return unwrapList(env, err)
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	line := func(wi api.WishlistItem) string {
		return fmt.Sprintf("%s (%s)", wi.Content, wi.Timestamp)
	}
	renderEntries(s.out, vm.Entries(), line)
	fmt.Fprintln(s.out, "commands: add <text>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenWishlist})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if text := strings.TrimSpace(strings.TrimPrefix(cmd, "add ")); strings.HasPrefix(cmd, "add ") && text != "" {
			res, err := s.api.SendWishlistItem(ctx, categoryID, text)
			if err != nil {
				fmt.Fprintln(s.out, "could not send wish")
				continue
			}
			if res.OK() {
				vm.AppendProvisional(api.WishlistItem{Content: text, Timestamp: flows.PlaceholderTimestamp})
			} else if res.Message != "" {
				fmt.Fprintln(s.out, res.Message)
			}
			renderEntries(s.out, vm.Entries(), line)
			continue
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitComplaints(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Complaints ==")
	vm := flows.NewListView(envelopeList(s.api.Complaints), s.log)
	defer vm.Close()
	vm.Load(ctx)
	line := func(c api.ComplaintItem) string {
		return fmt.Sprintf("[%d] %s (%s): %s", c.ID, c.Author, c.Timestamp, c.Content)
	}
	renderEntries(s.out, vm.Entries(), line)
	fmt.Fprintln(s.out, "commands: open <id>, send <text>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenComplaintsDetail, ID: id}, false
		}
		if text := strings.TrimSpace(strings.TrimPrefix(cmd, "send ")); strings.HasPrefix(cmd, "send ") && text != "" {
			res, err := s.api.SendComplaint(ctx, s.sess.Name, text)
			if err != nil {
				fmt.Fprintln(s.out, "could not send complaint")
				continue
			}
			if res.OK() {
				vm.AppendProvisional(api.ComplaintItem{
					Author:    s.sess.Name,
					Content:   text,
					Timestamp: flows.PlaceholderTimestamp,
				})
			} else if res.Message != "" {
				fmt.Fprintln(s.out, res.Message)
			}
			renderEntries(s.out, vm.Entries(), line)
			continue
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitComplaintsDetail(ctx context.Context, complaintID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Complaint %d ==\n", complaintID)
	vm := flows.NewDetailView(func(ctx context.Context) (*api.ComplaintItem, error) {
		env, err := s.api.ComplaintDetails(ctx, complaintID)
		return unwrapDetail(env, err)
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	if c := vm.Item(); c != nil {
		fmt.Fprintf(s.out, "  %s (%s)\n", c.Author, c.Timestamp)
		fmt.Fprintf(s.out, "  %s\n", c.Content)
	} else {
		fmt.Fprintln(s.out, "  (complaint unavailable)")
	}
	// Only admins get the reply field
	if !s.sess.CanModerateComplaints() {
		return s.waitForNav(Route{Screen: ScreenComplaints})
	}
	fmt.Fprintln(s.out, "commands: reply <text>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenComplaints})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if cmd == "reply" || strings.HasPrefix(cmd, "reply ") {
			text := strings.TrimSpace(strings.TrimPrefix(cmd, "reply"))
			if text == "" {
				fmt.Fprintln(s.out, "enter a reply first")
				continue
			}
			res, err := s.api.SendComplaintReply(ctx, complaintID, text)
			switch {
			case err != nil:
				fmt.Fprintln(s.out, "could not send reply")
			case res.OK():
				fmt.Fprintln(s.out, "reply sent")
			case res.Message != "":
				fmt.Fprintln(s.out, res.Message)
			default:
				fmt.Fprintln(s.out, "unknown error")
			}
			continue
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitRewards(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== Rewards ==")
	vm := flows.NewListView(envelopeList(s.api.Rewards), s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderEntries(s.out, vm.Entries(), func(r api.RewardItem) string {
		return fmt.Sprintf("[%d] %s", r.ID, r.Title)
	})
	fmt.Fprintln(s.out, "commands: open <id>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenRewardsDetail, ID: id}, false
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitRewardsDetail(ctx context.Context, rewardID int) (Route, bool) {
	fmt.Fprintf(s.out, "== Reward %d ==\n", rewardID)
	vm := flows.NewDetailView(func(ctx context.Context) (*api.RewardItem, error) {
		env, err := s.api.RewardDetails(ctx, rewardID)
		return unwrapDetail(env, err)
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	if r := vm.Item(); r != nil {
		fmt.Fprintf(s.out, "  %s\n", r.Title)
		fmt.Fprintf(s.out, "  %s\n", r.Description)
	} else {
		fmt.Fprintln(s.out, "  (reward unavailable)")
	}
	return s.waitForNav(Route{Screen: ScreenRewards})
}

func (s *Shell) visitNews(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== News ==")
	vm := flows.NewListView(func(ctx context.Context) ([]api.NewsItem, error) {
		res, err := s.api.News(ctx)
		if err != nil {
			return nil, err
		}
		if res.Status != api.StatusSuccess {
			return nil, fmt.Errorf("news: status %s", res.Status)
		}
		return res.News, nil
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	renderEntries(s.out, vm.Entries(), func(n api.NewsItem) string {
		return fmt.Sprintf("[%d] %s", n.ID, n.Title)
	})
	fmt.Fprintln(s.out, "commands: open <id>, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if id, ok := argOf(cmd, "open"); ok {
			return Route{Screen: ScreenNewsDetail, ID: id}, false
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

func (s *Shell) visitNewsDetail(ctx context.Context, newsID int) (Route, bool) {
	fmt.Fprintf(s.out, "== News %d ==\n", newsID)
	// News has no detail endpoint; the feed is fetched and searched
	vm := flows.NewDetailView(func(ctx context.Context) (*api.NewsItem, error) {
		res, err := s.api.News(ctx)
		if err != nil {
			return nil, err
		}
		for i := range res.News {
			if res.News[i].ID == newsID {
				return &res.News[i], nil
			}
		}
		return nil, nil
	}, s.log)
	defer vm.Close()
	vm.Load(ctx)
	if n := vm.Item(); n != nil {
		fmt.Fprintf(s.out, "  %s\n", n.Title)
		fmt.Fprintf(s.out, "  %s\n", n.Content)
	} else {
		fmt.Fprintln(s.out, "  (article unavailable)")
	}
	return s.waitForNav(Route{Screen: ScreenNews})
}

func (s *Shell) visitForms(ctx context.Context) (Route, bool) {
	fmt.Fprintln(s.out, "== School form ==")
	res, err := s.api.SchoolForm(ctx)
	if err != nil || res.Status != api.StatusSuccess {
		fmt.Fprintln(s.out, "  (form unavailable)")
	} else {
		fmt.Fprintf(s.out, "  %s\n", res.Form.Title)
		fmt.Fprintf(s.out, "  %s\n", res.Form.Content)
	}
	fmt.Fprintln(s.out, "commands: suggest, back")
	for {
		cmd, next, navigated, quit := s.prompt(Route{Screen: ScreenMenu})
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		if cmd == "suggest" {
			name, ok := s.readLine("full name: ")
			if !ok {
				return Route{}, true
			}
			class, ok := s.readLine("class: ")
			if !ok {
				return Route{}, true
			}
			text, ok := s.readLine("message: ")
			if !ok {
				return Route{}, true
			}
			ack, err := s.api.SendSuggestion(ctx, name, class, text)
			if err != nil {
				fmt.Fprintln(s.out, "could not send suggestion")
				continue
			}
			if ack.Message != "" {
				fmt.Fprintln(s.out, ack.Message)
			}
			continue
		}
		fmt.Fprintln(s.out, "unrecognized command")
	}
}

// waitForNav blocks on a navigation command from a terminal screen.
func (s *Shell) waitForNav(back Route) (Route, bool) {
	fmt.Fprintln(s.out, "commands: back, menu, quit")
	for {
		_, next, navigated, quit := s.prompt(back)
		if quit {
			return Route{}, true
		}
		if navigated {
			return next, false
		}
		fmt.Fprintln(s.out, "commands: back, menu, quit")
	}
}

// argOf parses "<verb> <id>" commands.
func argOf(cmd, verb string) (int, bool) {
	if !strings.HasPrefix(cmd, verb+" ") {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(cmd, verb+" ")))
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseSortMode maps the command word to a sort mode.
func parseSortMode(word string) (market.SortMode, bool) {
	switch word {
	case "none":
		return market.SortNone, true
	case "priceAsc":
		return market.SortPriceAsc, true
	case "priceDesc":
		return market.SortPriceDesc, true
	case "rating":
		return market.SortRatingDesc, true
	default:
		return market.SortNone, false
	}
}

// envelopeList adapts a no-argument envelope fetch to the flows contract.
func envelopeList[T any](call func(ctx context.Context) (api.Envelope[[]T], error)) func(ctx context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		env, err := call(ctx)
		return unwrapList(env, err)
	}
}

// unwrapList turns an envelope into a plain list; a success without data is
// an empty list, not an error.
func unwrapList[T any](env api.Envelope[[]T], err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, fmt.Errorf("status %s", env.Status)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return *env.Data, nil
}

// unwrapDetail turns an envelope into a single optional record.
func unwrapDetail[T any](env api.Envelope[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, fmt.Errorf("status %s", env.Status)
	}
	return env.Data, nil
}
