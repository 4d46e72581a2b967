package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

// salaryBody binds amount through a pointer: the SPA's loose coercion can
// put a JSON null on the wire, which must be rejected, not read as zero.
type salaryBody struct {
	Employee_id int      `json:"employee_id" validate:"required"`
	Month       string   `json:"month"`
	Year        int      `json:"year"`
	Amount      *float64 `json:"amount" validate:"required"`
	Paid_date   string   `json:"paid_date"`
	Notes       string   `json:"notes"`
}

func salaries(c *gin.Context) {
	sals := []model.Salary{}
	err := DB.Select(&sals, `select salary.id, employee_id,
	       coalesce(employee.name, '') as employee_name,
	       month, year, amount, paid_date, notes
	       from salary left join employee on employee_id=employee.id
	       order by year desc, salary.id desc`)
	if err == nil {
		c.JSON(http.StatusOK, sals)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func salaryadd(c *gin.Context) {
	sal := salaryBody{}
	if err := c.BindJSON(&sal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&sal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	_, err := DB.Exec("insert into salary(employee_id, month, year, amount, paid_date, notes) values(?,?,?,?,?,?)",
		sal.Employee_id, sal.Month, sal.Year, *sal.Amount, sal.Paid_date, sal.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, sal)
	}
}

func salaryupdate(c *gin.Context) {
	sal := salaryBody{}
	if err := c.BindJSON(&sal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&sal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	res, err := DB.Exec("update salary set employee_id=?, month=?, year=?, amount=?, paid_date=?, notes=? where id=?",
		sal.Employee_id, sal.Month, sal.Year, *sal.Amount, sal.Paid_date, sal.Notes, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salary not found"})
		return
	}
	c.JSON(http.StatusOK, sal)
}

func salarydelete(c *gin.Context) {
	res, err := DB.Exec("delete from salary where id=?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salary not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
