package handler

import (
	"fmt"
	"net/http"
	"time"

	"storepulse/intelligence"
	mid "storepulse/middleware"
	"storepulse/model/model"
	"storepulse/model/store"
	"storepulse/reports"
	U "storepulse/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// IntelligenceDashboardHandler recomputes the full customer intelligence
// payload from the current snapshot. One request, one pass; nothing is cached
// between requests.
func IntelligenceDashboardHandler(c *gin.Context) {
	dashboard, ok := buildDashboardForRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// IntelligenceDashboardExportHandler streams the dashboard as an XLSX report.
func IntelligenceDashboardExportHandler(c *gin.Context) {
	reqID := U.GetScopeByKeyAsString(c, mid.SCOPE_REQ_ID)
	logCtx := log.WithFields(log.Fields{"reqId": reqID})

	dashboard, ok := buildDashboardForRequest(c)
	if !ok {
		return
	}

	workbook, err := reports.BuildDashboardWorkbook(dashboard)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build dashboard workbook.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report."})
		return
	}
	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		logCtx.WithError(err).Error("Failed to serialize dashboard workbook.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report."})
		return
	}

	filename := fmt.Sprintf("intelligence_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())
}

// buildDashboardForRequest fetches the snapshot and runs the scoring pass.
// A store failure aborts the whole request with a single 500; there is no
// partial payload.
func buildDashboardForRequest(c *gin.Context) (model.IntelligenceDashboard, bool) {
	reqID := U.GetScopeByKeyAsString(c, mid.SCOPE_REQ_ID)
	logCtx := log.WithFields(log.Fields{"reqId": reqID})

	st := store.GetStore()
	if err := st.Ping(); err != nil {
		logCtx.WithError(err).Error("Dashboard failed. Store unavailable.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable."})
		return model.IntelligenceDashboard{}, false
	}

	customers, err := st.GetCustomersWithOrders()
	if err != nil {
		logCtx.WithError(err).Error("Dashboard failed. Could not load customers.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer snapshot."})
		return model.IntelligenceDashboard{}, false
	}
	orders, err := st.GetOrdersWithCustomerEmail()
	if err != nil {
		logCtx.WithError(err).Error("Dashboard failed. Could not load orders.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order snapshot."})
		return model.IntelligenceDashboard{}, false
	}

	return intelligence.BuildDashboard(customers, orders, time.Now().UTC()), true
}
