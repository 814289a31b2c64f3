// Package models contains the GORM persistence models and their mappings
// to and from the domain entities. Domain types stay free of persistence
// concerns; every table has a model here with ToDomain/FromDomain helpers.
package models
