package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/catalog"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
)

type DashboardHandler struct {
	repo domain.Repository
}

func NewDashboardHandler(repo domain.Repository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetDashboard monta os números do painel a partir do snapshot atual do
// store. As variações percentuais são fixas — não existe histórico para
// comparar, então ficam como dado ilustrativo igual ao painel original.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	aps := h.repo.List(c.Request.Context())

	byStatus := map[string]int{}
	for _, s := range domain.AllStatuses {
		byStatus[string(s)] = 0
	}

	byService := map[string]int{}
	var revenue float64

	for _, ap := range aps {
		byStatus[ap.Status]++
		byService[ap.ServiceID]++

		if ap.Status == string(domain.StatusCompleted) {
			if svc, ok := catalog.ServiceByID(ap.ServiceID); ok {
				revenue += svc.Price
			}
		}
	}

	type serviceCount struct {
		ServiceID   string `json:"service_id"`
		ServiceName string `json:"service_name"`
		Count       int    `json:"count"`
	}

	services := []serviceCount{}
	for _, svc := range catalog.Services() {
		services = append(services, serviceCount{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Count:       byService[svc.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_appointments": len(aps),
			"by_status":          byStatus,
			"completed_revenue":  revenue,
		},
		// deltas ilustrativos dos cards, como no painel original
		"changes": gin.H{
			"appointments":    12.5,
			"active_clients":  8.2,
			"monthly_revenue": 15.3,
			"attendance_rate": -2.1,
		},
		"services_chart": services,
	})
}
