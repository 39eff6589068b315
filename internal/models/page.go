package models

import "strings"

// Page identifies one of the closed set of client pages. The zero value
// is not a valid page.
type Page string

const (
	PageHome           Page = "Home"
	PageCategories     Page = "Categories"
	PageCreatepost     Page = "Createpost"
	PageProfile        Page = "Profile"
	PageCreated        Page = "Created"
	PageLiked          Page = "Liked"
	PageDisliked       Page = "Disliked"
	PageActivity       Page = "Activity"
	PageAdminDashboard Page = "AdminDashboard"
	PageLogin          Page = "Login"
	PageRegister       Page = "Register"
	PageError          Page = "Error"
)

// AllPages lists every known page identifier.
var AllPages = []Page{
	PageHome, PageCategories, PageCreatepost, PageProfile,
	PageCreated, PageLiked, PageDisliked, PageActivity,
	PageAdminDashboard, PageLogin, PageRegister, PageError,
}

func (p Page) Known() bool {
	for _, known := range AllPages {
		if p == known {
			return true
		}
	}
	return false
}

// Path returns the URL path used for history entries.
func (p Page) Path() string {
	return "/" + strings.ToLower(string(p))
}

// PageFromPath resolves a URL path to a page identifier. The empty path
// means Home; anything unrecognized resolves to Error, never to a blank
// page.
func PageFromPath(path string) Page {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return PageHome
	}

	lowered := strings.ToLower(trimmed)
	for _, known := range AllPages {
		if strings.ToLower(string(known)) == lowered {
			return known
		}
	}
	return PageError
}

// AllowedPages computes the page allow-list for a privilege tier. The
// lists are cumulative: each tier keeps everything the tier below it can
// reach. Login and Register stay reachable at every tier so that a stale
// session can always recover.
func AllowedPages(auth AuthContext) []Page {
	pages := []Page{PageHome, PageError, PageCategories, PageLogin, PageRegister}

	if auth.Authenticated && auth.Privilege >= TierUser {
		pages = append(pages,
			PageCreatepost, PageProfile, PageCreated,
			PageLiked, PageDisliked, PageActivity,
		)
	}
	if auth.Authenticated && auth.Privilege >= TierAdmin {
		pages = append(pages, PageAdminDashboard)
	}
	return pages
}

// PageAllowed reports whether the tier's allow-list contains the page.
func PageAllowed(auth AuthContext, page Page) bool {
	for _, allowed := range AllowedPages(auth) {
		if allowed == page {
			return true
		}
	}
	return false
}
