// Package errors provides the error taxonomy of the moderation engine and
// the panic-recovery watchdog.
//
// Every failure the engine can produce falls into one of four kinds:
// a missing record (ErrNotFound / ErrInvalidWarningIndex), a rejected
// privileged operation (ErrPermissionDenied), a durable write that did not
// complete (ErrPersistence), or a downstream platform call that failed
// (ErrPlatformAction). Persistence and platform failures are reported and
// never abort the pipeline; the engine stays live-best-effort.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced member or warning is absent.
	ErrNotFound = errors.New("registro no encontrado")

	// ErrInvalidWarningIndex indicates a warning retraction used a 1-based
	// index outside [1, len].
	ErrInvalidWarningIndex = fmt.Errorf("índice de advertencia inválido: %w", ErrNotFound)

	// ErrPermissionDenied indicates a non-privileged actor invoked a
	// privileged operation. The command layer pre-validates permissions
	// before the engine is ever called.
	ErrPermissionDenied = errors.New("permiso denegado")

	// ErrPersistence indicates the durable write of the policy set failed.
	// In-memory state already reflects the mutation when this is returned.
	ErrPersistence = errors.New("fallo de persistencia")

	// ErrPlatformAction indicates a downstream delete/ban/timeout call failed.
	ErrPlatformAction = errors.New("fallo de acción de plataforma")
)

// Persistence wraps err as a persistence failure.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// PlatformAction wraps err as a platform-action failure, tagged with the
// action that failed ("delete", "ban", "timeout", ...).
func PlatformAction(action string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w (%s): %v", ErrPlatformAction, action, err)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistence reports whether err is (or wraps) ErrPersistence.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsPlatformAction reports whether err is (or wraps) ErrPlatformAction.
func IsPlatformAction(err error) bool {
	return errors.Is(err, ErrPlatformAction)
}
