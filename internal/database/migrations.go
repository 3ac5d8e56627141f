package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

func RunMigrations(ctx context.Context, db DBTX, logger *zap.Logger) error {
	migrations := []string{
		createProjetosTable,
		createTarefasTable,
		createRecursosFinanceirosTable,
		createMateriaisTable,
		createFuncionariosTable,
		createAlocacaoFuncionariosTable,
		createAlertasAITable,
		createSugestoesAITable,
	}

	for i, migration := range migrations {
		logger.Debug("Running migration", zap.Int("step", i+1), zap.Int("total", len(migrations)))
		if _, err := db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("All migrations completed successfully", zap.Int("count", len(migrations)))
	return nil
}

const createProjetosTable = `
CREATE TABLE IF NOT EXISTS projetos (
  projeto_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  nome TEXT NOT NULL,
  descricao TEXT,
  localizacao TEXT,
  data_inicio DATE NOT NULL,
  data_prevista_fim DATE NOT NULL,
  status TEXT NOT NULL
);
`

const createTarefasTable = `
CREATE TABLE IF NOT EXISTS tarefas (
  tarefa_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  projeto_id BIGINT NOT NULL REFERENCES projetos(projeto_id) ON DELETE CASCADE,
  descricao TEXT NOT NULL,
  data_inicio_prevista TIMESTAMP NOT NULL,
  data_fim_prevista TIMESTAMP NOT NULL,
  data_inicio_real TIMESTAMP,
  data_fim_real TIMESTAMP,
  status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tarefas_projeto_id ON tarefas(projeto_id);
`

const createRecursosFinanceirosTable = `
CREATE TABLE IF NOT EXISTS recursos_financeiros (
  recurso_financeiro_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  projeto_id BIGINT NOT NULL REFERENCES projetos(projeto_id) ON DELETE CASCADE,
  tipo TEXT NOT NULL,
  descricao TEXT NOT NULL,
  valor NUMERIC NOT NULL,
  data DATE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recursos_financeiros_projeto_id ON recursos_financeiros(projeto_id);

ALTER TABLE recursos_financeiros ALTER COLUMN valor TYPE NUMERIC;
`

const createMateriaisTable = `
CREATE TABLE IF NOT EXISTS materiais (
  material_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  projeto_id BIGINT NOT NULL REFERENCES projetos(projeto_id) ON DELETE CASCADE,
  nome_material TEXT NOT NULL,
  quantidade_necessaria NUMERIC NOT NULL,
  quantidade_em_estoque NUMERIC NOT NULL DEFAULT 0,
  unidade TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_materiais_projeto_id ON materiais(projeto_id);

ALTER TABLE materiais
  ALTER COLUMN quantidade_necessaria TYPE NUMERIC,
  ALTER COLUMN quantidade_em_estoque TYPE NUMERIC;
`

const createFuncionariosTable = `
CREATE TABLE IF NOT EXISTS funcionarios (
  funcionario_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  nome_completo TEXT NOT NULL,
  funcao TEXT NOT NULL,
  status TEXT NOT NULL
);
`

const createAlocacaoFuncionariosTable = `
CREATE TABLE IF NOT EXISTS alocacao_funcionarios (
  alocacao_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  funcionario_id BIGINT NOT NULL REFERENCES funcionarios(funcionario_id) ON DELETE CASCADE,
  projeto_id BIGINT NOT NULL REFERENCES projetos(projeto_id) ON DELETE CASCADE,
  data_inicio_alocacao DATE NOT NULL,
  data_fim_alocacao DATE
);

CREATE INDEX IF NOT EXISTS idx_alocacao_funcionarios_projeto_id ON alocacao_funcionarios(projeto_id);
CREATE INDEX IF NOT EXISTS idx_alocacao_funcionarios_funcionario_id ON alocacao_funcionarios(funcionario_id);
`

const createAlertasAITable = `
CREATE TABLE IF NOT EXISTS alertas_ai (
  alerta_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  projeto_id BIGINT NOT NULL REFERENCES projetos(projeto_id) ON DELETE CASCADE,
  tipo_alerta TEXT NOT NULL,
  descricao_alerta TEXT NOT NULL,
  nivel_severidade TEXT NOT NULL,
  status TEXT NOT NULL,
  data_geracao TIMESTAMP NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);
`

const createSugestoesAITable = `
CREATE TABLE IF NOT EXISTS sugestoes_ai (
  sugestao_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  alerta_id BIGINT NOT NULL REFERENCES alertas_ai(alerta_id) ON DELETE CASCADE,
  descricao_sugestao TEXT NOT NULL,
  impacto_estimado TEXT,
  status_aprovacao TEXT NOT NULL DEFAULT 'Pendente'
);
`
