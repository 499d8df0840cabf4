package repositories

import "github.com/google/uuid"

// validID reports whether id can possibly match a stored record. Ids are
// generated by the application as uuids, and postgres refuses to compare a
// uuid column against anything else, so a malformed id must short-circuit to
// not-found instead of surfacing a database error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
