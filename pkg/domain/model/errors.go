package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying failures across the pipeline. Only
// ErrTagConfiguration aborts an operation; the others mark conditions
// that are collected into a validation report instead of returned.
var (
	ErrTagConfiguration = goerr.NewTag("configuration")
	ErrTagSchema        = goerr.NewTag("schema_violation")
	ErrTagIntegrity     = goerr.NewTag("integrity_violation")
	ErrTagEmptyDataset  = goerr.NewTag("empty_dataset")
)

// Sentinel errors for domain operations
var (
	ErrDatasetNotFound = goerr.New("dataset not found")
)
