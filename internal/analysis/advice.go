package analysis

import (
	"fmt"
	"strings"

	"bolsillo/internal/models"
)

// ReportInput carries the precomputed aggregates the advice report is built
// from. TopCategory is nil when there are no expense transactions, in which
// case the average-expense figure is also absent.
type ReportInput struct {
	TransactionCount    int
	AverageExpenseCents int64
	HasExpenses         bool
	BalanceCents        int64
	Status              Status
	TopCategory         *CategoryTotal
}

// adviceSections are the report sections in their fixed order. Each writes
// zero or more lines; conditional sections check the input themselves.
var adviceSections = []func(b *strings.Builder, in ReportInput){
	writeHeader,
	writeStatusLine,
	writeActivitySummary,
	writeTopCategoryLine,
	writeRecommendations,
	writeActionPlan,
	writeClosing,
}

// BuildAdvice renders the advice report. Identical inputs produce
// byte-identical output; there is no inference or randomness here, only
// template filling.
func BuildAdvice(in ReportInput) string {
	var b strings.Builder
	for _, section := range adviceSections {
		section(&b, in)
	}
	return b.String()
}

func writeHeader(b *strings.Builder, _ ReportInput) {
	b.WriteString("📊 **ANÁLISIS FINANCIERO PERSONALIZADO**\n\n")
}

func writeStatusLine(b *strings.Builder, in ReportInput) {
	var label string
	switch in.Status {
	case StatusHealthy:
		label = "💚 Saludable"
	case StatusWarning:
		label = "⚠️ Precaución"
	default:
		label = "🚨 Crítico"
	}
	fmt.Fprintf(b, "**Estado General: %s**\n\n", label)
}

func writeActivitySummary(b *strings.Builder, in ReportInput) {
	b.WriteString("**Resumen de Actividad:**\n")
	fmt.Fprintf(b, "• Total de transacciones: %d\n", in.TransactionCount)
	if in.HasExpenses {
		fmt.Fprintf(b, "• Gasto promedio: %s\n", FormatCents(in.AverageExpenseCents))
	}
	fmt.Fprintf(b, "• Balance actual: %s\n\n", FormatCents(in.BalanceCents))
}

func writeTopCategoryLine(b *strings.Builder, in ReportInput) {
	if in.TopCategory == nil {
		return
	}
	fmt.Fprintf(b, "**Categoría con más gasto:** %s (%s)\n\n",
		in.TopCategory.Name, FormatCents(in.TopCategory.TotalCents))
}

func writeRecommendations(b *strings.Builder, in ReportInput) {
	b.WriteString("**💡 Recomendaciones:**\n\n")

	if in.Status == StatusCritical {
		b.WriteString("🚨 **Atención Urgente:**\n")
		b.WriteString("• Tus gastos superan tus ingresos. Es momento de tomar acción.\n")
		b.WriteString("• Identifica gastos no esenciales y elimínalos temporalmente.\n")
		b.WriteString("• Considera generar ingresos adicionales (freelance, ventas).\n\n")
	}

	if in.Status == StatusWarning {
		b.WriteString("⚠️ **Precaución:**\n")
		b.WriteString("• Tu balance está ajustado. Mantén vigilancia sobre tus gastos.\n")
		b.WriteString("• Crea un fondo de emergencia si aún no tienes uno.\n\n")
	}

	if in.TopCategory != nil {
		fmt.Fprintf(b, "📌 **Sobre \"%s\":**\n", in.TopCategory.Name)
		fmt.Fprintf(b, "• Es tu categoría de mayor gasto (%s).\n", FormatCents(in.TopCategory.TotalCents))
		b.WriteString("• Busca alternativas más económicas en esta área.\n")
		b.WriteString("• Establece un presupuesto mensual específico.\n\n")
	}
}

func writeActionPlan(b *strings.Builder, _ ReportInput) {
	b.WriteString("**🎯 Plan de Acción:**\n")
	b.WriteString("1. Establece un presupuesto mensual para cada categoría\n")
	b.WriteString("2. Usa la regla 50/30/20: 50% necesidades, 30% deseos, 20% ahorro\n")
	b.WriteString("3. Revisa tus gastos semanalmente usando esta app\n")
	b.WriteString("4. Busca una transacción que puedas eliminar cada semana\n")
	b.WriteString("5. Celebra cuando logres ahorrar más del 20% de tus ingresos\n\n")
}

func writeClosing(b *strings.Builder, _ ReportInput) {
	b.WriteString("Recuerda: El primer paso para mejorar tus finanzas es tener consciencia de ellas. ¡Vas por buen camino! 💪")
}

// BuildReportInput derives the advice inputs from a transaction set and its
// summary. The top category is the largest expense rollup; with zero expense
// transactions both it and the average are absent rather than NaN.
func BuildReportInput(txns []models.Transaction, summary FinancialSummary) ReportInput {
	in := ReportInput{
		TransactionCount: len(txns),
		BalanceCents:     summary.BalanceCents,
		Status:           summary.Status,
	}
	in.AverageExpenseCents, in.HasExpenses = AverageExpense(txns)
	if top := TopCategories(txns, 1); len(top) > 0 {
		in.TopCategory = &top[0]
	}
	return in
}
