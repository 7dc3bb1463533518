package domain

type ChartKind string

const (
	ChartLine      ChartKind = "line"
	ChartBar       ChartKind = "bar"
	ChartPie       ChartKind = "pie"
	ChartScatter   ChartKind = "scatter"
	ChartHistogram ChartKind = "histogram"
)

type ChartPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// ChartSeries carrega Data (alinhado a Chart.Labels) ou Points (dispersão)
type ChartSeries struct {
	Label  string       `json:"label"`
	Data   []float64    `json:"data,omitempty"`
	Points []ChartPoint `json:"points,omitempty"`
	Dashed bool         `json:"dashed,omitempty"`
}

type Chart struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Kind       ChartKind     `json:"kind"`
	Labels     []string      `json:"labels,omitempty"`
	Series     []ChartSeries `json:"series"`
	XLabel     string        `json:"x_label,omitempty"`
	YLabel     string        `json:"y_label,omitempty"`
	Horizontal bool          `json:"horizontal,omitempty"`
}

// Empty indica que não há dados para desenhar
func (c Chart) Empty() bool {
	for _, s := range c.Series {
		if len(s.Data) > 0 || len(s.Points) > 0 {
			return false
		}
	}
	return true
}

type TabKey string

const (
	TabOverview    TabKey = "overview"
	TabCustomers   TabKey = "customers"
	TabRestaurants TabKey = "restaurants"
	TabMenu        TabKey = "menu"
	TabRevenue     TabKey = "revenue"
	TabOperations  TabKey = "operations"
)

type Tab struct {
	Key   TabKey
	Title string
}

// Tabs lista as abas na ordem de navegação
var Tabs = []Tab{
	{Key: TabOverview, Title: "Visão Geral"},
	{Key: TabCustomers, Title: "Clientes"},
	{Key: TabRestaurants, Title: "Restaurantes"},
	{Key: TabMenu, Title: "Cardápio"},
	{Key: TabRevenue, Title: "Receita"},
	{Key: TabOperations, Title: "Operações"},
}

func LookupTab(key string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t.Key) == key {
			return t, true
		}
	}
	return Tab{}, false
}

type TabView struct {
	Tab    Tab
	Charts []Chart
}
