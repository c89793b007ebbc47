package httpserver

import (
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var indexHTML string

// indexEmail is the display projection of a received email.
type indexEmail struct {
	Subject     string
	Snippet     string
	From        string
	Date        string
	Unread      bool
	Attachments int
}

func (srv *HTTPServer) registerIndex() {
	tmpl := template.Must(template.New("index.html").Parse(indexHTML))
	srv.gin.SetHTMLTemplate(tmpl)
	srv.gin.GET("/", srv.index)
}

// index renders the in-process registry of received emails.
// @Summary Received emails page
// @Tags Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (srv *HTTPServer) index(c *gin.Context) {
	emails := srv.registry.Snapshot()

	rows := make([]indexEmail, len(emails))
	for i, e := range emails {
		from := ""
		if len(e.From) > 0 {
			if m, ok := e.From[0].(map[string]any); ok {
				if email, ok := m["email"].(string); ok {
					from = email
				}
			}
		}
		rows[i] = indexEmail{
			Subject:     e.Subject,
			Snippet:     e.Snippet,
			From:        from,
			Date:        time.Unix(e.Date, 0).Format("2006-01-02 15:04"),
			Unread:      e.Unread,
			Attachments: len(e.Attachments),
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Webhooks": rows,
		"Count":    len(rows),
	})
}
