// Package models contains the GORM database models of the chart archive and
// the geocode cache. These models handle database persistence and are
// separated from domain entities to maintain Clean Architecture principles.
package models
