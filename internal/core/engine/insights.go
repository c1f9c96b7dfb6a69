package engine

import (
	"sort"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	monthsInYear = decimal.NewFromInt(12)
	hundred      = decimal.NewFromInt(100)

	lowMarginPercent   = decimal.NewFromInt(5)
	healthyMargin      = decimal.NewFromInt(10)
	highDebtRatio      = decimal.RequireFromString("0.7")
	safeDebtRatio      = decimal.RequireFromString("0.6")
	weakCurrentRatio   = decimal.RequireFromString("1.5")
	overdueDays        = decimal.NewFromInt(90)
	slowCollectionDays = decimal.NewFromInt(60)
	healthyDSO         = decimal.NewFromInt(45)
	slowTurnover       = decimal.NewFromInt(4)
	healthyTurnover    = decimal.NewFromInt(6)
	lowROE             = decimal.NewFromInt(10)
	targetROE          = decimal.NewFromInt(15)
	opexCutShare       = decimal.RequireFromString("0.15")
)

func receivableDays(t domain.Totals) decimal.Decimal {
	return accounting.SafeDiv(t.Receivables, t.Revenue).Mul(daysInYear)
}

func figure(v decimal.Decimal) *decimal.Decimal { return &v }

// RaiseAlerts checks cash cover, collection days, losses, leverage and margin against
// their alarm thresholds. Cash cover is only measured when there are operating
// expenses to cover, and collection days only when there is revenue.
func RaiseAlerts(t domain.Totals) []domain.Alert {
	alerts := []domain.Alert{}

	if t.OperatingExpenses.IsPositive() {
		months := t.Cash.Div(t.OperatingExpenses.Div(monthsInYear))
		if months.LessThan(one) {
			alerts = append(alerts, domain.Alert{
				Code:      "cash-coverage",
				Severity:  domain.SeverityCritical,
				Title:     "تحذير: النقدية لا تغطي شهر واحد من المصروفات",
				Action:    "تدبير سيولة فورية",
				Value:     months,
				Threshold: one,
				Estimated: t.IsEstimated("cash"),
			})
		}
	}

	if days := receivableDays(t); days.GreaterThan(overdueDays) {
		alerts = append(alerts, domain.Alert{
			Code:      "overdue-receivables",
			Severity:  domain.SeverityCritical,
			Title:     "تحذير: ذمم متأخرة أكثر من 90 يوم",
			Action:    "اتخاذ إجراءات تحصيل فورية",
			Value:     days,
			Threshold: overdueDays,
			Estimated: t.IsEstimated("receivables"),
		})
	}

	if t.NetIncome.IsNegative() {
		alerts = append(alerts, domain.Alert{
			Code:      "net-loss",
			Severity:  domain.SeverityCritical,
			Title:     "تحذير حرج: خسائر تشغيلية",
			Action:    "خطة طوارئ لوقف الخسائر",
			Value:     t.NetIncome.Abs(),
			Threshold: decimal.Zero,
		})
	}

	if t.Ratios.DebtRatio.GreaterThan(highDebtRatio) {
		alerts = append(alerts, domain.Alert{
			Code:      "high-debt",
			Severity:  domain.SeverityWarning,
			Title:     "تحذير: مديونية مرتفعة",
			Action:    "خطة لتخفيض المديونية",
			Value:     t.Ratios.DebtRatio,
			Threshold: highDebtRatio,
		})
	}

	if t.Ratios.ProfitMargin.LessThan(lowMarginPercent) {
		alerts = append(alerts, domain.Alert{
			Code:      "low-margin",
			Severity:  domain.SeverityWarning,
			Title:     "تحذير: هامش ربح منخفض",
			Action:    "مراجعة استراتيجية التسعير والتكاليف",
			Value:     t.Ratios.ProfitMargin,
			Threshold: lowMarginPercent,
		})
	}

	return alerts
}

// Recommend turns weak indicators into prioritized actions with computed targets.
// Liquidity rules need current liabilities and the inventory rule needs stock on hand.
func Recommend(t domain.Totals) []domain.Recommendation {
	recs := []domain.Recommendation{}
	r := t.Ratios

	if r.ProfitMargin.LessThan(lowMarginPercent) {
		recs = append(recs, domain.Recommendation{
			Code:      "low-margin",
			Severity:  domain.SeverityCritical,
			Priority:  1,
			Title:     "انخفاض هامش الربح الصافي",
			Value:     r.ProfitMargin,
			Benchmark: healthyMargin,
			Actions: []domain.Action{
				{Text: "رفع الأسعار تدريجياً (نسبة مئوية)", Figure: figure(healthyMargin.Sub(r.ProfitMargin))},
				{Text: "خفض التكاليف التشغيلية (نسبة مئوية من الإيرادات)", Figure: figure(accounting.Percent(t.OperatingExpenses.Mul(opexCutShare), t.Revenue))},
				{Text: "إيقاف المنتجات/الخدمات ذات الهامش السلبي"},
				{Text: "مراجعة عقود الموردين للحصول على خصومات"},
			},
		})
	}

	if t.CurrentLiabilities.IsPositive() {
		switch {
		case r.CurrentRatio.LessThan(one):
			recs = append(recs, domain.Recommendation{
				Code:      "liquidity-crisis",
				Severity:  domain.SeverityCritical,
				Priority:  1,
				Title:     "أزمة سيولة حادة",
				Value:     r.CurrentRatio,
				Benchmark: one,
				Actions: []domain.Action{
					{Text: "تحصيل الذمم المدينة فوراً", Figure: figure(t.Receivables)},
					{Text: "تأجيل المدفوعات غير الضرورية"},
					{Text: "الحصول على تمويل قصير الأجل", Figure: figure(t.CurrentLiabilities.Sub(t.CurrentAssets))},
					{Text: "بيع الأصول غير المنتجة"},
				},
			})
		case r.CurrentRatio.LessThan(weakCurrentRatio):
			recs = append(recs, domain.Recommendation{
				Code:      "weak-liquidity",
				Severity:  domain.SeverityWarning,
				Priority:  2,
				Title:     "سيولة ضعيفة",
				Value:     r.CurrentRatio,
				Benchmark: weakCurrentRatio,
				Actions: []domain.Action{
					{Text: "تسريع تحصيل الذمم المدينة"},
					{Text: "تقليل المخزون الراكد"},
					{Text: "إعادة جدولة الديون قصيرة الأجل"},
				},
			})
		}
	}

	if r.DebtRatio.GreaterThan(highDebtRatio) {
		recs = append(recs, domain.Recommendation{
			Code:      "high-debt",
			Severity:  domain.SeverityCritical,
			Priority:  1,
			Title:     "مديونية مرتفعة جداً",
			Value:     r.DebtRatio,
			Benchmark: safeDebtRatio,
			Actions: []domain.Action{
				{Text: "سداد الديون ذات الفائدة المرتفعة أولاً"},
				{Text: "زيادة رأس المال عن طريق شركاء جدد"},
				{Text: "تحويل جزء من الأرباح لسداد الديون"},
				{Text: "إعادة هيكلة الديون مع الدائنين"},
			},
		})
	}

	if days := receivableDays(t); days.GreaterThan(slowCollectionDays) {
		recs = append(recs, domain.Recommendation{
			Code:      "slow-collection",
			Severity:  domain.SeverityWarning,
			Priority:  2,
			Title:     "تأخر في تحصيل الذمم",
			Value:     days,
			Benchmark: healthyDSO,
			Actions: []domain.Action{
				{Text: "تطبيق سياسة خصم نقدي للدفع المبكر (2% خصم خلال 10 أيام)"},
				{Text: "تشديد شروط الائتمان للعملاء الجدد"},
				{Text: "متابعة يومية للحسابات المتأخرة"},
				{Text: "تحويل الحسابات المتعثرة لشركات التحصيل"},
			},
		})
	}

	if t.Inventory.IsPositive() {
		if turnover := t.COGS.Div(t.Inventory); turnover.LessThan(slowTurnover) {
			recs = append(recs, domain.Recommendation{
				Code:      "slow-inventory",
				Severity:  domain.SeverityWarning,
				Priority:  3,
				Title:     "بطء دوران المخزون",
				Value:     turnover,
				Benchmark: healthyTurnover,
				Actions: []domain.Action{
					{Text: "تخفيضات على المخزون الراكد"},
					{Text: "تحسين التنبؤ بالطلب"},
					{Text: "تطبيق نظام Just-In-Time"},
					{Text: "مراجعة سياسات الشراء"},
				},
			})
		}
	}

	if r.ROE.LessThan(lowROE) {
		recs = append(recs, domain.Recommendation{
			Code:      "low-roe",
			Severity:  domain.SeverityInfo,
			Priority:  3,
			Title:     "عائد منخفض على حقوق الملكية",
			Value:     r.ROE,
			Benchmark: targetROE,
			Actions: []domain.Action{
				{Text: "زيادة الربحية من خلال رفع الأسعار أو خفض التكاليف"},
				{Text: "استخدام الرافعة المالية بحذر لزيادة العائد"},
				{Text: "الاستثمار في مشاريع ذات عائد مرتفع"},
				{Text: "تحسين كفاءة استخدام الأصول"},
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	return recs
}

// MeasurePerformance scores margin, current ratio and ROE against targets. An indicator
// whose denominator is not positive reads as zero.
func MeasurePerformance(t domain.Totals, targets domain.TargetAssumptions) domain.Performance {
	positive := func(num, den decimal.Decimal) decimal.Decimal {
		if !den.IsPositive() {
			return decimal.Zero
		}
		return num.Div(den)
	}
	kpi := func(name string, actual, target decimal.Decimal) domain.KPI {
		progress := accounting.Percent(actual, target)
		if progress.GreaterThan(hundred) {
			progress = hundred
		}
		return domain.KPI{
			Name:     name,
			Actual:   actual,
			Target:   target,
			Variance: actual.Sub(target),
			Progress: progress,
			Met:      actual.GreaterThanOrEqual(target),
		}
	}

	return domain.Performance{
		KPIs: []domain.KPI{
			kpi("profitMargin", positive(t.NetIncome, t.Revenue).Mul(hundred), targets.ProfitMargin),
			kpi("currentRatio", positive(t.CurrentAssets, t.CurrentLiabilities), targets.CurrentRatio),
			kpi("roe", positive(t.NetIncome, t.Equity).Mul(hundred), targets.ROE),
		},
	}
}

// PredefinedStrategies are the structural moves offered by the strategy simulator.
func PredefinedStrategies() []domain.Strategy {
	return []domain.Strategy{
		{Name: "التوسع", Investment: decimal.NewFromInt(500000), RevenueFactor: decimal.RequireFromString("1.3"),
			COGSFactor: decimal.RequireFromString("1.25"), ExpenseFactor: decimal.RequireFromString("1.2"),
			Risk: domain.RiskHigh, Timeline: "12-18 شهر"},
		{Name: "الانكماش", Investment: decimal.NewFromInt(-200000), RevenueFactor: decimal.RequireFromString("0.85"),
			COGSFactor: decimal.RequireFromString("0.75"), ExpenseFactor: decimal.RequireFromString("0.7"),
			Risk: domain.RiskMedium, Timeline: "6-9 أشهر"},
		{Name: "الإغلاق الجزئي", Investment: decimal.Zero, RevenueFactor: decimal.RequireFromString("0.6"),
			COGSFactor: decimal.RequireFromString("0.5"), ExpenseFactor: decimal.RequireFromString("0.4"),
			Risk: domain.RiskLow, Timeline: "3-6 أشهر"},
		{Name: "دخول سوق جديد", Investment: decimal.NewFromInt(300000), RevenueFactor: decimal.RequireFromString("1.2"),
			COGSFactor: decimal.RequireFromString("1.15"), ExpenseFactor: decimal.RequireFromString("1.1"),
			Risk: domain.RiskMedium, Timeline: "9-12 شهر"},
	}
}

// SimulateStrategy prices s against the current income statement. ROI is the profit
// change over the absolute investment and is zero when nothing is invested.
func SimulateStrategy(t domain.Totals, s domain.Strategy) domain.StrategyResult {
	res := domain.StrategyResult{
		Strategy:        s,
		ExpectedRevenue: t.Revenue.Mul(s.RevenueFactor),
		ExpectedCosts:   t.COGS.Mul(s.COGSFactor).Add(t.OperatingExpenses.Mul(s.ExpenseFactor)),
	}
	res.ExpectedProfit = res.ExpectedRevenue.Sub(res.ExpectedCosts)
	res.ProfitChange = res.ExpectedProfit.Sub(t.NetIncome)
	res.ChangePercent = accounting.Percent(res.ProfitChange, t.NetIncome)
	res.ROI = accounting.Percent(res.ProfitChange, s.Investment.Abs())
	res.Improves = res.ProfitChange.IsPositive()
	return res
}

// SimulateStrategies evaluates every strategy in order.
func SimulateStrategies(t domain.Totals, strategies []domain.Strategy) []domain.StrategyResult {
	out := make([]domain.StrategyResult, 0, len(strategies))
	for _, s := range strategies {
		out = append(out, SimulateStrategy(t, s))
	}
	return out
}
