package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

func payments(c *gin.Context) {
	pmts := []model.Payment{}
	err := DB.Select(&pmts, `select payment.id, party_id,
	       coalesce(party.name, '') as party_name, amount, payment_date, notes
	       from payment left join party on party_id=party.id
	       order by payment_date desc, payment.id desc`)
	if err == nil {
		c.JSON(http.StatusOK, pmts)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func paymentadd(c *gin.Context) {
	pmt := model.Payment{}
	if err := c.BindJSON(&pmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&pmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	_, err := DB.Exec("insert into payment(party_id, amount, payment_date, notes) values(?,?,?,?)",
		pmt.Party_id, pmt.Amount, pmt.Payment_date, pmt.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, pmt)
	}
}

func paymentupdate(c *gin.Context) {
	pmt := model.Payment{}
	if err := c.BindJSON(&pmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := validate.Struct(&pmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": requiredMsg(err)})
		return
	}
	res, err := DB.Exec("update payment set party_id=?, amount=?, payment_date=?, notes=? where id=?",
		pmt.Party_id, pmt.Amount, pmt.Payment_date, pmt.Notes, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, pmt)
}

func paymentdelete(c *gin.Context) {
	res, err := DB.Exec("delete from payment where id=?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
