package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"

	"solarys/internal/database"
	"solarys/internal/models"
)

type api struct {
	t      *testing.T
	router *gin.Engine
}

func (a api) call(method, path string, body any) (int, json.RawMessage) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func (a api) object(method, path string, body any, wantStatus int) map[string]any {
	a.t.Helper()
	status, raw := a.call(method, path, body)
	require.Equal(a.t, wantStatus, status, string(raw))
	var m map[string]any
	require.NoError(a.t, json.Unmarshal(raw, &m))
	return m
}

func (a api) list(path string) []map[string]any {
	a.t.Helper()
	status, raw := a.call(http.MethodGet, path, nil)
	require.Equal(a.t, http.StatusOK, status, string(raw))
	var items []map[string]any
	require.NoError(a.t, json.Unmarshal(raw, &items))
	require.NotNil(a.t, items)
	return items
}

func idOf(t *testing.T, m map[string]any, key string) int64 {
	t.Helper()
	v, ok := m[key].(float64)
	require.True(t, ok, "missing %s in %v", key, m)
	return int64(v)
}

func ids(items []map[string]any, key string) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, int64(it[key].(float64)))
	}
	return out
}

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("solarys"),
		postgres.WithUsername("solarys"),
		postgres.WithPassword("secret"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.Connect(ctx, dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool, zap.NewNop()))
	// Migrations are idempotent.
	require.NoError(t, database.RunMigrations(ctx, pool, zap.NewNop()))

	return pool
}

func project(name string) map[string]any {
	return map[string]any{
		"Nome":            name,
		"Descricao":       "Instalação fotovoltaica",
		"DataInicio":      "2025-01-10",
		"DataPrevistaFim": "2025-07-31",
		"Status":          "Em Andamento",
	}
}

func TestIntegration(t *testing.T) {
	pool := startPostgres(t)

	router, err := NewRouter(database.NewPoolProvider(pool), nil, nil, zap.NewNop())
	require.NoError(t, err)

	t.Run("project lifecycle", func(t *testing.T) {
		a := api{t: t, router: router}

		created := a.object(http.MethodPost, "/projetos/", project("Usina Norte"), http.StatusCreated)
		id := idOf(t, created, "ProjetoID")
		assert.Equal(t, "Usina Norte", created["Nome"])
		assert.Nil(t, created["Localizacao"])

		got := a.object(http.MethodGet, fmt.Sprintf("/projetos/%d", id), nil, http.StatusOK)
		assert.Equal(t, created, got)
		assert.Contains(t, ids(a.list("/projetos/"), "ProjetoID"), id)

		update := project("Usina Norte II")
		update["Localizacao"] = "Petrolina"
		update["Status"] = "Concluído"
		updated := a.object(http.MethodPut, fmt.Sprintf("/projetos/%d", id), update, http.StatusOK)
		assert.Equal(t, id, idOf(t, updated, "ProjetoID"))
		assert.Equal(t, "Petrolina", updated["Localizacao"])
		assert.Equal(t, updated, a.object(http.MethodGet, fmt.Sprintf("/projetos/%d", id), nil, http.StatusOK))

		before := a.list("/projetos/")
		missing := a.object(http.MethodPut, "/projetos/999999", update, http.StatusNotFound)
		assert.Equal(t, "Projeto não encontrado para atualização.", missing["detail"])
		assert.Equal(t, before, a.list("/projetos/"))

		missing = a.object(http.MethodDelete, "/projetos/999999", nil, http.StatusNotFound)
		assert.Equal(t, "Projeto não encontrado para deleção.", missing["detail"])

		status, body := a.call(http.MethodDelete, fmt.Sprintf("/projetos/%d", id), nil)
		require.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, body)

		missing = a.object(http.MethodGet, fmt.Sprintf("/projetos/%d", id), nil, http.StatusNotFound)
		assert.Equal(t, "Projeto não encontrado.", missing["detail"])

		missing = a.object(http.MethodGet, "/projetos/0", nil, http.StatusNotFound)
		assert.Equal(t, "Projeto não encontrado.", missing["detail"])
	})

	t.Run("tasks are scoped to their project", func(t *testing.T) {
		a := api{t: t, router: router}
		p1 := idOf(t, a.object(http.MethodPost, "/projetos/", project("P1"), http.StatusCreated), "ProjetoID")
		p2 := idOf(t, a.object(http.MethodPost, "/projetos/", project("P2"), http.StatusCreated), "ProjetoID")

		task := func(projectID int64, desc string) map[string]any {
			return map[string]any{
				"ProjetoID":          projectID,
				"Descricao":          desc,
				"DataInicioPrevista": "2025-02-01T08:00:00",
				"DataFimPrevista":    "2025-02-10T17:30:00.25",
				"Status":             "Pendente",
			}
		}

		t1 := a.object(http.MethodPost, "/tarefas/", task(p1, "Fundação"), http.StatusCreated)
		t2 := a.object(http.MethodPost, "/tarefas/", task(p1, "Estrutura"), http.StatusCreated)
		t3 := a.object(http.MethodPost, "/tarefas/", task(p2, "Painéis"), http.StatusCreated)

		assert.Equal(t, "2025-02-10T17:30:00.25", t1["DataFimPrevista"])
		assert.Nil(t, t1["DataInicioReal"])

		assert.Equal(t,
			[]int64{idOf(t, t1, "TarefaID"), idOf(t, t2, "TarefaID")},
			ids(a.list(fmt.Sprintf("/projetos/%d/tarefas/", p1)), "TarefaID"))
		assert.Equal(t,
			[]int64{idOf(t, t3, "TarefaID")},
			ids(a.list(fmt.Sprintf("/projetos/%d/tarefas/", p2)), "TarefaID"))
		assert.Empty(t, a.list("/projetos/999999/tarefas/"))

		done := task(p1, "Fundação")
		done["DataInicioReal"] = "2025-02-02T09:00:00Z"
		done["Status"] = "Concluída"
		tid := idOf(t, t1, "TarefaID")
		updated := a.object(http.MethodPut, fmt.Sprintf("/tarefas/%d", tid), done, http.StatusOK)
		assert.Equal(t, "2025-02-02T09:00:00", updated["DataInicioReal"])
		assert.Equal(t, updated, a.object(http.MethodGet, fmt.Sprintf("/tarefas/%d", tid), nil, http.StatusOK))

		orphan := a.object(http.MethodPost, "/tarefas/", task(999999, "Órfã"), http.StatusBadRequest)
		assert.Equal(t, "Referência a registro inexistente.", orphan["detail"])

		// Deleting a project removes its tasks.
		status, _ := a.call(http.MethodDelete, fmt.Sprintf("/projetos/%d", p1), nil)
		require.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, a.list(fmt.Sprintf("/projetos/%d/tarefas/", p1)))
		a.object(http.MethodGet, fmt.Sprintf("/tarefas/%d", tid), nil, http.StatusNotFound)
	})

	t.Run("financial resources and materials", func(t *testing.T) {
		a := api{t: t, router: router}
		pid := idOf(t, a.object(http.MethodPost, "/projetos/", project("Financeiro"), http.StatusCreated), "ProjetoID")

		resource := a.object(http.MethodPost, "/recursos_financeiros/", map[string]any{
			"ProjetoID": pid,
			"Tipo":      "Despesa",
			"Descricao": "Inversores",
			"Valor":     1234.56,
			"Data":      "2025-03-01",
		}, http.StatusCreated)
		assert.Equal(t, 1234.56, resource["Valor"])
		rid := idOf(t, resource, "RecursoFinanceiroID")
		assert.Equal(t, []int64{rid}, ids(a.list(fmt.Sprintf("/projetos/%d/recursos_financeiros/", pid)), "RecursoFinanceiroID"))

		material := a.object(http.MethodPost, "/materiais/", map[string]any{
			"ProjetoID":            pid,
			"NomeMaterial":         "Cabo solar 6mm",
			"QuantidadeNecessaria": 500,
			"Unidade":              "m",
		}, http.StatusCreated)
		assert.Equal(t, float64(0), material["QuantidadeEmEstoque"])
		mid := idOf(t, material, "MaterialID")

		updated := a.object(http.MethodPut, fmt.Sprintf("/materiais/%d", mid), map[string]any{
			"ProjetoID":            pid,
			"NomeMaterial":         "Cabo solar 6mm",
			"QuantidadeNecessaria": 500,
			"QuantidadeEmEstoque":  120.5,
			"Unidade":              "m",
		}, http.StatusOK)
		assert.Equal(t, 120.5, updated["QuantidadeEmEstoque"])

		missing := a.object(http.MethodPut, "/materiais/999999", map[string]any{
			"ProjetoID":            pid,
			"NomeMaterial":         "x",
			"QuantidadeNecessaria": 1,
			"Unidade":              "un",
		}, http.StatusNotFound)
		assert.Equal(t, "Material não encontrado para atualização.", missing["detail"])
		assert.Len(t, a.list(fmt.Sprintf("/projetos/%d/materiais/", pid)), 1)

		status, _ := a.call(http.MethodDelete, fmt.Sprintf("/recursos_financeiros/%d", rid), nil)
		require.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, a.list(fmt.Sprintf("/projetos/%d/recursos_financeiros/", pid)))

		// Zero, negative and finely scaled amounts are stored as given.
		for _, valor := range []float64{0, -150.5, 10.005, 12345678901234568} {
			created := a.object(http.MethodPost, "/recursos_financeiros/", map[string]any{
				"ProjetoID": pid,
				"Tipo":      "Ajuste",
				"Descricao": "Lançamento",
				"Valor":     valor,
				"Data":      "2025-03-02",
			}, http.StatusCreated)
			assert.Equal(t, valor, created["Valor"])
			got := a.object(http.MethodGet, fmt.Sprintf("/recursos_financeiros/%d", idOf(t, created, "RecursoFinanceiroID")), nil, http.StatusOK)
			assert.Equal(t, valor, got["Valor"])
		}

		zero := a.object(http.MethodPost, "/materiais/", map[string]any{
			"ProjetoID":            pid,
			"NomeMaterial":         "Parafuso",
			"QuantidadeNecessaria": 0,
			"QuantidadeEmEstoque":  -2.125,
			"Unidade":              "un",
		}, http.StatusCreated)
		assert.Equal(t, float64(0), zero["QuantidadeNecessaria"])
		assert.Equal(t, -2.125, zero["QuantidadeEmEstoque"])
	})

	t.Run("employees and allocations", func(t *testing.T) {
		a := api{t: t, router: router}
		pid := idOf(t, a.object(http.MethodPost, "/projetos/", project("Equipe"), http.StatusCreated), "ProjetoID")
		employee := a.object(http.MethodPost, "/funcionarios/", map[string]any{
			"NomeCompleto": "Maria Souza",
			"Funcao":       "Eletricista",
			"Status":       "Ativo",
		}, http.StatusCreated)
		eid := idOf(t, employee, "FuncionarioID")
		assert.Contains(t, ids(a.list("/funcionarios/"), "FuncionarioID"), eid)

		allocation := a.object(http.MethodPost, "/alocacoes/", map[string]any{
			"FuncionarioID":      eid,
			"ProjetoID":          pid,
			"DataInicioAlocacao": "2025-04-01",
		}, http.StatusCreated)
		assert.Nil(t, allocation["DataFimAlocacao"])
		aid := idOf(t, allocation, "AlocacaoID")

		updated := a.object(http.MethodPut, fmt.Sprintf("/alocacoes/%d", aid), map[string]any{
			"FuncionarioID":      eid,
			"ProjetoID":          pid,
			"DataInicioAlocacao": "2025-04-01",
			"DataFimAlocacao":    "2025-05-15",
		}, http.StatusOK)
		assert.Equal(t, "2025-05-15", updated["DataFimAlocacao"])
		assert.Equal(t, []int64{aid}, ids(a.list(fmt.Sprintf("/projetos/%d/alocacoes/", pid)), "AlocacaoID"))

		missing := a.object(http.MethodPut, "/alocacoes/999999", map[string]any{
			"FuncionarioID":      eid,
			"ProjetoID":          pid,
			"DataInicioAlocacao": "2025-04-01",
		}, http.StatusNotFound)
		assert.Equal(t, "Alocação não encontrada para atualização.", missing["detail"])

		status, _ := a.call(http.MethodDelete, fmt.Sprintf("/funcionarios/%d", eid), nil)
		require.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, a.list(fmt.Sprintf("/projetos/%d/alocacoes/", pid)))
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		a := api{t: t, router: router}
		const n = 20
		var wg sync.WaitGroup
		results := make([]int64, n)
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				body, _ := json.Marshal(map[string]any{
					"NomeCompleto": fmt.Sprintf("Funcionário %d", i),
					"Funcao":       "Montador",
					"Status":       "Ativo",
				})
				req := httptest.NewRequest(http.MethodPost, "/funcionarios/", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				if w.Code != http.StatusCreated {
					errs[i] = fmt.Errorf("status %d: %s", w.Code, w.Body.String())
					return
				}
				var m map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
					errs[i] = err
					return
				}
				results[i] = int64(m["FuncionarioID"].(float64))
			}(i)
		}
		wg.Wait()

		seen := make(map[int64]bool, n)
		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.False(t, seen[results[i]], "duplicate id %d", results[i])
			seen[results[i]] = true
			a.object(http.MethodGet, fmt.Sprintf("/funcionarios/%d", results[i]), nil, http.StatusOK)
		}
	})

	t.Run("ai tables apply their defaults", func(t *testing.T) {
		a := api{t: t, router: router}
		ctx := context.Background()
		pid := idOf(t, a.object(http.MethodPost, "/projetos/", project("Alertas"), http.StatusCreated), "ProjetoID")

		rows, err := pool.Query(ctx, `
			INSERT INTO alertas_ai (projeto_id, tipo_alerta, descricao_alerta, nivel_severidade, status)
			VALUES ($1, 'Atraso', 'Risco de atraso na fundação', 'Alta', 'Aberto')
			RETURNING alerta_id, projeto_id, tipo_alerta, descricao_alerta, nivel_severidade, status, data_geracao`, pid)
		require.NoError(t, err)
		alert, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AIAlert])
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), alert.DataGeracao.Time, time.Minute)

		rows, err = pool.Query(ctx, `
			INSERT INTO sugestoes_ai (alerta_id, descricao_sugestao)
			VALUES ($1, 'Antecipar entrega de concreto')
			RETURNING sugestao_id, alerta_id, descricao_sugestao, impacto_estimado, status_aprovacao`, alert.ID)
		require.NoError(t, err)
		suggestion, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AISuggestion])
		require.NoError(t, err)
		assert.Equal(t, models.SuggestionStatusPending, suggestion.StatusAprovacao)
		assert.Nil(t, suggestion.ImpactoEstimado)
	})
}
