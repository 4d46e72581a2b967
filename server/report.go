package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mktrading/backoffice/model"
)

// Month bucketing works on the ISO YYYY-MM-DD text the entity endpoints
// store; strftime against 'start of month' keeps the previous-month window
// exact at month boundaries.

func replastmonth(c *gin.Context) {
	rows := []model.PartyPayment{}
	err := DB.Select(&rows, `select party.id as party_id, party.name as party_name,
	       sum(amount) as total_payment
	       from payment join party on party_id=party.id
	       where strftime('%Y-%m', payment_date) =
	             strftime('%Y-%m', date('now', 'start of month', '-1 month'))
	       group by party.id, party.name order by party.name`)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, rows)
	}
}

func repcurrentmonth(c *gin.Context) {
	rows := []model.PartyPayment{}
	err := DB.Select(&rows, `select party.id as party_id, party.name as party_name,
	       sum(amount) as total_payment
	       from payment join party on party_id=party.id
	       where strftime('%Y-%m', payment_date) = strftime('%Y-%m', 'now')
	       group by party.id, party.name order by party.name`)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, rows)
	}
}

// repoutstanding lists parties whose challan total still exceeds what they
// have paid. Fully settled parties are omitted.
func repoutstanding(c *gin.Context) {
	rows := []model.Outstanding{}
	err := DB.Select(&rows, `select party.id as party_id, party.name as party_name,
	       coalesce(ch.total, 0) as total_challan,
	       coalesce(pm.total, 0) as total_paid,
	       coalesce(ch.total, 0) - coalesce(pm.total, 0) as outstanding
	       from party
	       left join (select party_id, sum(amount) as total from challan group by party_id) ch
	            on ch.party_id=party.id
	       left join (select party_id, sum(amount) as total from payment group by party_id) pm
	            on pm.party_id=party.id
	       where coalesce(ch.total, 0) - coalesce(pm.total, 0) > 0
	       order by outstanding desc`)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, rows)
	}
}

func reptotalincoming(c *gin.Context) {
	total := model.TotalIncoming{}
	err := DB.Get(&total, "select coalesce(sum(amount), 0) as total_incoming from payment")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, total)
	}
}
