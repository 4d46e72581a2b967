package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

const challanList = `select challan.id, challan_number, party_id,
       coalesce(party.name, '') as party_name, date, amount, description
       from challan left join party on party_id=party.id`

func challans(c *gin.Context) {
	challans := []model.Challan{}
	err := DB.Select(&challans, challanList+" order by date desc, challan.id desc")
	if err == nil {
		c.JSON(http.StatusOK, challans)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func challanadd(c *gin.Context) {
	challan := model.Challan{}
	if err := c.BindJSON(&challan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&challan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	_, err := DB.Exec("insert into challan(challan_number, party_id, date, amount, description) values(?,?,?,?,?)",
		challan.Challan_number, challan.Party_id, challan.Date, challan.Amount, challan.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, challan)
	}
}

func challanupdate(c *gin.Context) {
	challan := model.Challan{}
	if err := c.BindJSON(&challan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&challan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	res, err := DB.Exec("update challan set challan_number=?, party_id=?, date=?, amount=?, description=? where id=?",
		challan.Challan_number, challan.Party_id, challan.Date, challan.Amount, challan.Description, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challan not found"})
		return
	}
	c.JSON(http.StatusOK, challan)
}

func challandelete(c *gin.Context) {
	res, err := DB.Exec("delete from challan where id=?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
