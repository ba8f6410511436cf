package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/agebook/agebook/internal/friend/service"
	"github.com/agebook/agebook/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// friendType exposes the stored record for clients that want the raw
// tri-state (missing record / record without age / record with age)
// instead of the rendered sentence.
var friendType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Friend",
	Fields: graphql.Fields{
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"age":       &graphql.Field{Type: graphql.Int},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

// instrument wraps a resolver with request metrics.
func instrument(field string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		v, err := fn(p)
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.ObserveGraphQL(field, status, time.Since(start).Seconds())
		return v, err
	}
}

// NewSchema builds the GraphQL schema over the friend service.
func NewSchema(svc *service.Service) (graphql.Schema, error) {
	nameArg := graphql.FieldConfigArgument{
		"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	setAgeField := func(field string) *graphql.Field {
		return &graphql.Field{
			Type: graphql.String,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"age":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: instrument(field, func(p graphql.ResolveParams) (interface{}, error) {
				name, _ := p.Args["name"].(string)
				age, _ := p.Args["age"].(int)
				persisted, err := svc.SetAge(p.Context, name, age)
				if err != nil {
					return nil, err
				}
				return strconv.Itoa(persisted), nil
			}),
		}
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAge": &graphql.Field{
				Type: graphql.String,
				Args: nameArg,
				Resolve: instrument("getAge", func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					return svc.GetAge(p.Context, name)
				}),
			},
			"friend": &graphql.Field{
				Type: friendType,
				Args: nameArg,
				Resolve: instrument("friend", func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					f, err := svc.Lookup(p.Context, name)
					if err != nil {
						return nil, err
					}
					if f == nil {
						// absent record, not an error
						return nil, nil
					}
					return f, nil
				}),
			},
		},
	})

	setAge := setAgeField("setAge")
	changeAge := setAgeField("changeAge")
	changeAge.DeprecationReason = "Use setAge."

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"setAge":    setAge,
			"changeAge": changeAge,
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// RegisterGraphQL registers the GraphQL endpoint. POST takes the usual
// JSON body; GET takes the query string (handy for smoke tests).
func RegisterGraphQL(r gin.IRoutes, schema graphql.Schema) {
	execute := func(c *gin.Context, req graphqlRequest) {
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Request.Context(),
		})
		c.JSON(http.StatusOK, result)
	}

	r.POST("/graphql", func(c *gin.Context) {
		var req graphqlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		execute(c, req)
	})

	r.GET("/graphql", func(c *gin.Context) {
		q := c.Query("query")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter"})
			return
		}
		execute(c, graphqlRequest{Query: q})
	})
}
