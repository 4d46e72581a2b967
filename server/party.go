package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

func parties(c *gin.Context) {
	parties := []model.Party{}
	err := DB.Select(&parties, "select * from party order by name")
	if err == nil {
		c.JSON(http.StatusOK, parties)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func partyadd(c *gin.Context) {
	party := model.Party{}
	if err := c.BindJSON(&party); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		fmt.Printf("%#v \n%#v", party, err)
		return
	}
	if err := validate.Struct(&party); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	_, err := DB.NamedExec("insert into party(name, contact, address, gstin) values(:name, :contact, :address, :gstin)", &party)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, party)
	}
}

func partyupdate(c *gin.Context) {
	party := model.Party{}
	if err := c.BindJSON(&party); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&party); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	res, err := DB.Exec("update party set name=?, contact=?, address=?, gstin=? where id=?",
		party.Name, party.Contact, party.Address, party.Gstin, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}
	c.JSON(http.StatusOK, party)
}

func partydelete(c *gin.Context) {
	res, err := DB.Exec("delete from party where id=?", c.Param("id"))
	if err != nil {
		// challans/payments still reference it
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
