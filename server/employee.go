package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

func employees(c *gin.Context) {
	emps := []model.Employee{}
	err := DB.Select(&emps, "select * from employee order by name")
	if err == nil {
		c.JSON(http.StatusOK, emps)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func employeeadd(c *gin.Context) {
	emp := model.Employee{}
	if err := c.BindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	_, err := DB.NamedExec("insert into employee(name, contact, role, joining_date) values(:name, :contact, :role, :joining_date)", &emp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, emp)
	}
}

func employeeupdate(c *gin.Context) {
	emp := model.Employee{}
	if err := c.BindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	res, err := DB.Exec("update employee set name=?, contact=?, role=?, joining_date=? where id=?",
		emp.Name, emp.Contact, emp.Role, emp.Joining_date, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

func employeedelete(c *gin.Context) {
	res, err := DB.Exec("delete from employee where id=?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
