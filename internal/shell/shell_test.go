package shell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/api"
	"schoolhub/internal/session"
)

// scriptedAs runs the shell against a fake backend with canned input lines
// and returns everything it printed. A non-empty role stores a user up front
// so the shell opens on the menu; an empty role starts at the login screen.
func scriptedAs(t *testing.T, role string, routes func(r *gin.Engine), lines ...string) (string, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL+"/", 5*time.Second, nil)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	store, err := session.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if role != "" {
		if err := store.SaveUser(5, "Ann", role, "7-B"); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	var out strings.Builder
	sh := New(client, store, nil, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String(), store
}

func scripted(t *testing.T, loggedIn bool, routes func(r *gin.Engine), lines ...string) (string, *session.Store) {
	t.Helper()
	role := ""
	if loggedIn {
		role = "admin"
	}
	return scriptedAs(t, role, routes, lines...)
}

func TestLoginThroughMarketFlow(t *testing.T) {
	routes := func(r *gin.Engine) {
		r.GET("/push/index.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "success", "message": "welcome",
				"user_id": 5, "name": "Ann", "role": "admin", "className": "7-B",
			})
		})
		r.GET("/push/market/getCategories.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": []gin.H{
				{"id": 1, "name": "Stationery", "imageUrl": ""},
			}})
		})
		r.GET("/push/market/getProducts.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": []gin.H{
				{"id": 7, "title": "Pen set", "price": 100.0, "discountPrice": 40.0, "rating": 5, "imageUrl": "", "description": ""},
				{"id": 8, "title": "Notebook", "price": 50.0, "rating": 3, "imageUrl": "", "description": ""},
			}})
		})
		r.GET("/push/market/deleteProduct.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		})
	}
	out, store := scripted(t, false, routes,
		"1234",       // access code
		"9",          // menu: Creative Market
		"open 1",     // category 1
		"search pen", // filter
		"delete 7",   // admin delete
		"quit",
	)

	if store.UserID() != 5 || store.UserRole() != "admin" {
		t.Fatalf("login did not persist the user: id=%d role=%q", store.UserID(), store.UserRole())
	}
	for _, want := range []string{"welcome", "Stationery", "Pen set", "-60%", "Notebook"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// After the admin delete the filtered view is empty
	if !strings.Contains(out, "(no products)") {
		t.Errorf("deleted product still rendered:\n%s", out)
	}
}

func TestWishlistProvisionalAppend(t *testing.T) {
	routes := func(r *gin.Engine) {
		r.GET("/push/getWishlist.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": []gin.H{
				{"id": 1, "content": "bike rack", "timestamp": "10:00"},
			}})
		})
		r.POST("/push/sendWishlistItem.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "message": "saved"})
		})
	}
	out, _ := scripted(t, true, routes,
		"wishlistCategory/2", // menu accepts a raw route
		"add new whiteboard",
		"quit",
	)
	if !strings.Contains(out, "bike rack") {
		t.Errorf("list not rendered:\n%s", out)
	}
	if !strings.Contains(out, "new whiteboard (just now)  [pending]") {
		t.Errorf("provisional wish not marked pending:\n%s", out)
	}
}

func TestAdminComplaintReply(t *testing.T) {
	var gotID, gotReply string
	routes := func(r *gin.Engine) {
		r.GET("/push/getComplaintDetails.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
				"id": 4, "author": "Bea", "content": "broken locker", "timestamp": "10:00",
			}})
		})
		r.POST("/push/sendComplaintReply.php", func(c *gin.Context) {
			gotID = c.PostForm("complaintId")
			gotReply = c.PostForm("reply")
			c.JSON(http.StatusOK, gin.H{"status": "success", "message": "saved"})
		})
	}
	out, _ := scriptedAs(t, "admin", routes,
		"complaintsDetail/4",
		"reply", // empty reply never reaches the server
		"reply locker fixed",
		"quit",
	)
	if !strings.Contains(out, "broken locker") {
		t.Errorf("complaint not rendered:\n%s", out)
	}
	if !strings.Contains(out, "enter a reply first") {
		t.Errorf("empty reply not rejected:\n%s", out)
	}
	if gotID != "4" || gotReply != "locker fixed" {
		t.Errorf("reply not forwarded: id=%q reply=%q", gotID, gotReply)
	}
	if !strings.Contains(out, "reply sent") {
		t.Errorf("success not reported:\n%s", out)
	}
}

func TestStudentGetsNoComplaintReplyField(t *testing.T) {
	var replyCalls int
	routes := func(r *gin.Engine) {
		r.GET("/push/getComplaintDetails.php", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
				"id": 4, "author": "Bea", "content": "broken locker", "timestamp": "10:00",
			}})
		})
		r.POST("/push/sendComplaintReply.php", func(c *gin.Context) {
			replyCalls++
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		})
	}
	out, _ := scriptedAs(t, "student", routes,
		"complaintsDetail/4",
		"reply locker fixed",
		"quit",
	)
	if strings.Contains(out, "reply <text>") {
		t.Errorf("reply field offered to a student:\n%s", out)
	}
	if replyCalls != 0 {
		t.Errorf("student reply reached the server %d times", replyCalls)
	}
}

func TestMenuShownWhenAlreadyLoggedIn(t *testing.T) {
	out, _ := scripted(t, true, func(r *gin.Engine) {}, "quit")
	if !strings.Contains(out, "== Menu ==") {
		t.Fatalf("stored session must skip the login screen:\n%s", out)
	}
}
