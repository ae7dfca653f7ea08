package store

import (
	"eventdir/internal/platform/config"
	"eventdir/internal/platform/store/pg"
)

// PGURL returns svc's DBURL when set, otherwise composes one from libpq style keys
// (HOST, PORT, USER, PASSWORD, DATABASE) under libpq. Empty when neither names a database
func PGURL(svc, libpq config.Conf) string {
	if u := svc.MayString("DBURL", ""); u != "" {
		return u
	}
	parts := pg.Parts{
		Host:     libpq.MayString("HOST", ""),
		Port:     libpq.MayInt("PORT", pg.DefaultPort),
		User:     libpq.MayString("USER", ""),
		Password: libpq.MayString("PASSWORD", ""),
		Database: libpq.MayString("DATABASE", ""),
	}
	if parts.Database == "" {
		return ""
	}
	return parts.URL()
}
