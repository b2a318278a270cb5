package handlers

import (
	"net/http"

	"restaurant-pos-api/assistant"
	"restaurant-pos-api/config"
	"restaurant-pos-api/i18n"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/stock"

	"github.com/gin-gonic/gin"
)

// langStore keeps saved language preferences across assistant requests,
// one entry per user.
var langStore = i18n.NewMemoryStore()

type AssistantChatRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

// AssistantChat answers a back-office question from already-loaded aggregate
// data. Responses are canned and keyword-matched, not generated.
func AssistantChat(c *gin.Context) {
	var req AssistantChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tr := i18n.LoadForUser(langStore, middleware.GetUserID(c))
	if req.Language != "" {
		tr.SetLanguage(i18n.Language(req.Language))
	}

	snapshot := loadAssistantSnapshot()
	reply := assistant.Reply(req.Message, snapshot, tr)

	c.JSON(http.StatusOK, gin.H{
		"reply":    reply,
		"language": tr.Language(),
	})
}

func loadAssistantSnapshot() assistant.Snapshot {
	var inventory []models.InventoryItem
	config.DB.Find(&inventory)
	lowStock := []models.InventoryItem{}
	for _, item := range inventory {
		if stock.Classify(item.CurrentStock, item.MinLevel) != stock.InStock {
			lowStock = append(lowStock, item)
		}
	}

	start, end := todayRange()
	var orders []models.Order
	config.DB.Where("created_at >= ? AND created_at < ?", start, end).Find(&orders)

	var attendance []models.StaffAttendance
	config.DB.Where("date >= ? AND date < ?", start, end).Find(&attendance)

	var activeStaff int64
	config.DB.Model(&models.Staff{}).Where("is_active = ?", true).Count(&activeStaff)

	return assistant.Snapshot{
		LowStockItems:    lowStock,
		TodaysOrders:     orders,
		TodaysAttendance: attendance,
		ActiveStaff:      int(activeStaff),
	}
}
