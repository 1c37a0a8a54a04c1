package dto

import (
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// FinancialSummaryResponse represents the financial summary in API
// responses. The Spanish field names are a compatibility contract with the
// existing frontend and must not change.
type FinancialSummaryResponse struct {
	IngresosTotales        float64 `json:"ingresos_totales"`
	GastosTotales          float64 `json:"gastos_totales"`
	GastosFijos            float64 `json:"gastos_fijos"`
	GastosVariables        float64 `json:"gastos_variables"`
	CantidadPedidos        int64   `json:"cantidad_pedidos"`
	PuntoEquilibrio        float64 `json:"punto_equilibrio"`
	Balance                float64 `json:"balance"`
	RentabilidadPorcentaje float64 `json:"rentabilidad_porcentaje"`
}

// ToFinancialSummaryResponse converts a summary entity to its API representation.
func ToFinancialSummaryResponse(s *entity.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		IngresosTotales:        s.RevenueTotal.InexactFloat64(),
		GastosTotales:          s.ExpensesTotal.InexactFloat64(),
		GastosFijos:            s.ExpensesFixed.InexactFloat64(),
		GastosVariables:        s.ExpensesVariable.InexactFloat64(),
		CantidadPedidos:        s.PaidOrderCount,
		PuntoEquilibrio:        s.BreakEvenPoint.InexactFloat64(),
		Balance:                s.Balance.InexactFloat64(),
		RentabilidadPorcentaje: s.ProfitabilityPercent.InexactFloat64(),
	}
}
