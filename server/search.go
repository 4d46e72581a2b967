package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

// searchbychallan resolves a challan number to the party it was issued to,
// as one composite record.
func searchbychallan(c *gin.Context) {
	number := c.Query("challanNumber")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "challanNumber is required"})
		return
	}
	rec := model.PartyChallan{}
	err := DB.Get(&rec, `select party.name, party.contact, party.address, party.gstin,
	       challan_number, date as challan_date, amount as challan_amount, description
	       from challan join party on party_id=party.id
	       where challan_number=? limit 1`, number)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No challan found with that number"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// searchbyparty lists a party's challans, either by id or by name substring.
func searchbyparty(c *gin.Context) {
	challans := []model.Challan{}
	if id := c.Query("partyId"); id != "" {
		err := DB.Select(&challans, challanList+" where party_id=? order by date desc", id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, challans)
		return
	}
	if name := c.Query("partyName"); name != "" {
		err := DB.Select(&challans, challanList+" where party.name like ? order by date desc", "%"+name+"%")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, challans)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "partyId or partyName is required"})
}
