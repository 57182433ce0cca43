package usecase

import (
	"rice-leaf-detection/internal/classification/parser"
	"rice-leaf-detection/internal/classification/repository"
	"rice-leaf-detection/pkg/log"
)

// implUseCase is the private implementation of classification.UseCase.
type implUseCase struct {
	l         log.Logger
	predictor repository.Predictor
	parser    parser.Parser
}

// New creates a new classification UseCase implementation.
func New(l log.Logger, predictor repository.Predictor, p parser.Parser) *implUseCase {
	return &implUseCase{
		l:         l,
		predictor: predictor,
		parser:    p,
	}
}
