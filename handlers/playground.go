package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterPlayground registers a small GraphiQL page for poking at the
// GraphQL endpoint from a browser.
func RegisterPlayground(rg *gin.Engine) {
	rg.GET("/graphiql", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, graphiqlHTML)
	})
}

const graphiqlHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>agebook - GraphiQL</title>
    <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
    <style>body { margin: 0; } #graphiql { height: 100vh; }</style>
  </head>
  <body>
    <div id="graphiql"></div>
    <script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
    <script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
    <script>
      ReactDOM.createRoot(document.getElementById('graphiql')).render(
        React.createElement(GraphiQL, {
          fetcher: GraphiQL.createFetcher({ url: '/graphql' }),
        })
      )
    </script>
  </body>
</html>`
