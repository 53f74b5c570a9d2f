// Package authz decide si un caller puede operar sobre una tienda.
//
// El modelo es plano y deliberado: dos predicados (dueño; dueño o trabajador) cubren
// todos los endpoints mutadores. No hay bits de permiso más finos.
package authz

import (
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/entity"
)

// AuthorizeOwner pasa sólo si callerID es el subject del dueño de la tienda.
// Sin efectos: devuelve ErrForbidden y el caller aborta la operación.
func AuthorizeOwner(store *entity.Store, callerID string) error {
	if store == nil || callerID == "" || store.OwnerID != callerID {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeOwnerOrWorker pasa si callerID es el dueño o figura entre los trabajadores.
// Búsqueda lineal: las listas de trabajadores son pequeñas.
func AuthorizeOwnerOrWorker(store *entity.Store, callerID string) error {
	if store == nil || callerID == "" {
		return domain.ErrForbidden
	}
	if store.OwnerID == callerID {
		return nil
	}
	for _, w := range store.Workers {
		if w.SubjectID == callerID {
			return nil
		}
	}
	return domain.ErrForbidden
}
