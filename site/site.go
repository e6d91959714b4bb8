// Package site describes the document head served with every page.
package site

// Link is a <link> element of the document head.
type Link struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href"`
}

// Head is the document head metadata.
type Head struct {
	Title    string `json:"title"`
	Charset  string `json:"charset"`
	Viewport string `json:"viewport"`
	Link     []Link `json:"link"`
}

// Config is the application mount configuration.
type Config struct {
	BaseURL string `json:"baseURL"`
	Head    Head   `json:"head"`
}

const (
	Title    = "Kollel App"
	Charset  = "utf-8"
	Viewport = "width=device-width, initial-scale=1"

	// IconLetter and IconFill are the favicon defaults.
	IconLetter = "K"
	IconFill   = "#4f39f6"
)

// App is the site configuration.
var App = Config{
	BaseURL: "/",
	Head: Head{
		Title:    Title,
		Charset:  Charset,
		Viewport: Viewport,
		Link: []Link{
			{Rel: "icon", Type: "image/svg+xml", Href: Favicon(IconLetter, IconFill)},
		},
	},
}
