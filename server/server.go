// Package server is the REST backend for the M.K. Trading back office. One
// file per entity, handlers named <entity>s/<entity>add/<entity>update/
// <entity>delete, sqlite behind sqlx.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

var validate = validator.New()

// Setup wires the route table on a fresh engine. The database handle and
// signing key are package state; the process runs one server.
func Setup(db *sqlx.DB, secret string) *gin.Engine {
	DB = db
	keySecret = secret
	r := gin.Default()

	r.POST("/api/login", login)

	auth := r.Group("/api")
	auth.Use(Auth)

	auth.GET("/parties", parties)
	auth.POST("/parties", partyadd)
	auth.PUT("/parties/:id", partyupdate)
	auth.DELETE("/parties/:id", partydelete)
	auth.GET("/parties/search-by-challan", searchbychallan)

	auth.GET("/challans", challans)
	auth.POST("/challans", challanadd)
	auth.PUT("/challans/:id", challanupdate)
	auth.DELETE("/challans/:id", challandelete)
	auth.GET("/challans/search-by-party", searchbyparty)

	auth.GET("/payments", payments)
	auth.POST("/payments", paymentadd)
	auth.PUT("/payments/:id", paymentupdate)
	auth.DELETE("/payments/:id", paymentdelete)

	auth.GET("/employees", employees)
	auth.POST("/employees", employeeadd)
	auth.PUT("/employees/:id", employeeupdate)
	auth.DELETE("/employees/:id", employeedelete)

	auth.GET("/salaries", salaries)
	auth.POST("/salaries", salaryadd)
	auth.PUT("/salaries/:id", salaryupdate)
	auth.DELETE("/salaries/:id", salarydelete)

	auth.GET("/office-expenses", expenses)
	auth.POST("/office-expenses", expenseadd)
	auth.PUT("/office-expenses/:id", expenseupdate)
	auth.DELETE("/office-expenses/:id", expensedelete)

	auth.GET("/reports/last-month-payments", replastmonth)
	auth.GET("/reports/current-month-payments", repcurrentmonth)
	auth.GET("/reports/outstanding", repoutstanding)
	auth.GET("/reports/total-incoming", reptotalincoming)

	return r
}

// requiredMsg turns the first validation failure into the inline message the
// SPA shows next to the form.
func requiredMsg(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("%s is required", errs[0].Field())
	}
	return err.Error()
}
