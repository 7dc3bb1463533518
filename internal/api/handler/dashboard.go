package handler

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/presenting"
	"github.com/vfg2006/food-delivery-analytics/pkg/apiErrors"
	"github.com/vfg2006/food-delivery-analytics/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultTab = domain.TabOverview

//go:embed templates/dashboard.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

// SnapshotRefresher é a parte do agendador de atualização usada pelas páginas
type SnapshotRefresher interface {
	Ensure(ctx context.Context) *domain.Snapshot
	Refresh(ctx context.Context) *domain.Snapshot
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type chartView struct {
	ID    string
	Title string
	Empty bool
}

type dashboardPage struct {
	Title          string
	Active         domain.Tab
	Tabs           []domain.Tab
	KPIs           []presenting.KPICard
	Charts         []chartView
	ChartSpecs     template.JS
	RefreshSeconds int
	SessionID      string
	GeneratedAt    string
	RefreshCount   int
	Refreshing     bool
}

// RedirectToTab envia a raiz do dashboard para a aba padrão
func RedirectToTab(tab domain.TabKey) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, tabPath(tab), http.StatusFound)
	})
}

// DashboardTab renderiza a aba pedida com os KPIs e os gráficos do snapshot
func DashboardTab(refresher SnapshotRefresher, presenter presenting.Presenter, cfg config.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		key := httprouter.ParamsFromContext(r.Context()).ByName("tab")
		tab, ok := domain.LookupTab(key)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrTabNotFound, fmt.Sprintf("Aba %q não encontrada", key), nil)
			return
		}

		var snapshot *domain.Snapshot
		if cfg.RefreshOnNavigate {
			snapshot = refresher.Refresh(r.Context())
		} else {
			snapshot = refresher.Ensure(r.Context())
		}

		page, err := newDashboardPage(tab, snapshot, presenter, refresher.GetStatus(), cfg)
		if err != nil {
			logger.WithError(err).Error("Erro ao serializar os gráficos da aba")
			apiErrors.WriteError(w, apiErrors.ErrRenderPage, "Erro ao montar os gráficos", nil)
			return
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, page); err != nil {
			logger.WithError(err).Error("Erro ao renderizar a página do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrRenderPage, "Erro ao renderizar a página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("Erro ao enviar a página do dashboard")
		}
	}
}

// TriggerRefresh dispara uma atualização manual e volta para a aba de origem
func TriggerRefresh(refresher SnapshotRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := DefaultTab
		if tab, ok := domain.LookupTab(r.FormValue("tab")); ok {
			target = tab.Key
		}

		started := refresher.TriggerManualSync(r.Context())
		logrus.WithFields(logrus.Fields{
			"tab":     target,
			"started": started,
		}).Info("Atualização manual do dashboard solicitada")

		http.Redirect(w, r, tabPath(target), http.StatusSeeOther)
	}
}

// NotFound responde caminhos desconhecidos no mesmo formato de erro das abas
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrTabNotFound, fmt.Sprintf("Página %q não encontrada", r.URL.Path), nil)
	})
}

func newDashboardPage(
	tab domain.Tab,
	snapshot *domain.Snapshot,
	presenter presenting.Presenter,
	status map[string]any,
	cfg config.Dashboard,
) (dashboardPage, error) {
	view := presenter.Tab(tab, snapshot)

	specs, err := json.Marshal(view.Charts)
	if err != nil {
		return dashboardPage{}, err
	}

	charts := make([]chartView, 0, len(view.Charts))
	for _, c := range view.Charts {
		charts = append(charts, chartView{ID: c.ID, Title: c.Title, Empty: c.Empty()})
	}

	page := dashboardPage{
		Title:          "Food Delivery Analytics",
		Active:         tab,
		Tabs:           domain.Tabs,
		KPIs:           presenter.KPIs(snapshot),
		Charts:         charts,
		ChartSpecs:     template.JS(specs),
		RefreshSeconds: cfg.RefreshSeconds,
	}

	if snapshot != nil {
		page.SessionID = snapshot.SessionID
		if !snapshot.GeneratedAt.IsZero() {
			page.GeneratedAt = snapshot.GeneratedAt.UTC().Format("02/01/2006 15:04:05 UTC")
		}
	}
	if count, ok := status["refresh_count"].(int); ok {
		page.RefreshCount = count
	}
	if running, ok := status["sync_running"].(bool); ok {
		page.Refreshing = running
	}

	return page, nil
}

func tabPath(tab domain.TabKey) string {
	return "/tabs/" + string(tab)
}
