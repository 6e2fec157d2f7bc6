package console

const autostartHeader = "Executing code from autostart"

// RunAutostart はフィルタ済みの文を順番に評価する
// 途中の文が失敗しても後続の文は実行される
func (s *Session) RunAutostart(statements []string) {
	if len(statements) == 0 {
		return
	}

	s.logger.Info().Int("statements", len(statements)).Msg("running autostart")
	s.transcript.Append(autostartHeader)
	s.runStatements(statements)
}

// RunPreamble は設定のプリアンブルを見出しを付けずに順番に評価する
func (s *Session) RunPreamble(statements []string) {
	if len(statements) == 0 {
		return
	}

	s.logger.Info().Int("statements", len(statements)).Msg("running preamble")
	s.runStatements(statements)
}

func (s *Session) runStatements(statements []string) {
	for _, statement := range statements {
		s.evaluate(statement)
	}
}
