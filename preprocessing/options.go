package preprocessing

import "github.com/YuminosukeSato/prepro/pkg/log"

// PipelineOption はPipelineの設定を変更する関数
type PipelineOption func(*Pipeline)

// WithLogger はステップごとのログの出力先を設定する
func WithLogger(logger log.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithFiniteCheck は各ステップの出力にNaN・Infが含まれていないか検証する
func WithFiniteCheck(check bool) PipelineOption {
	return func(p *Pipeline) {
		p.finiteCheck = check
	}
}

// WithName はログとエラーに使うPipelineの名前を設定する
func WithName(name string) PipelineOption {
	return func(p *Pipeline) {
		p.name = name
	}
}
