package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

// expenseBody: amount is the only required field, and like salary it is a
// pointer so a JSON null from the form's unchecked coercion comes back 400.
type expenseBody struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount" validate:"required"`
	Date        string   `json:"date"`
}

func expenses(c *gin.Context) {
	exps := []model.OfficeExpense{}
	err := DB.Select(&exps, "select * from office_expense order by date desc, id desc")
	if err == nil {
		c.JSON(http.StatusOK, exps)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func expenseadd(c *gin.Context) {
	exp := expenseBody{}
	if err := c.BindJSON(&exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	_, err := DB.Exec("insert into office_expense(category, description, amount, date) values(?,?,?,?)",
		exp.Category, exp.Description, *exp.Amount, exp.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, exp)
	}
}

func expenseupdate(c *gin.Context) {
	exp := expenseBody{}
	if err := c.BindJSON(&exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	res, err := DB.Exec("update office_expense set category=?, description=?, amount=?, date=? where id=?",
		exp.Category, exp.Description, *exp.Amount, exp.Date, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, exp)
}

func expensedelete(c *gin.Context) {
	res, err := DB.Exec("delete from office_expense where id=?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
