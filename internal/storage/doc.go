// Package storage provides the durable store for chatmesh.
//
// Profiles, friendships, friend applications and chat threads live in
// postgres, reached through database/sql on the pgx stdlib driver. The
// package exposes one Store with focused query methods; the service
// layer composes them and fronts the hot reads with the shared cache.
//
// Pagination is id-cursor based throughout: callers pass the last row
// id they saw and get the next page in ascending id order.
package storage
