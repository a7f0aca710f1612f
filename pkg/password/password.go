package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes límite de bcrypt: cuenta bytes UTF-8, no caracteres.
const MaxBytes = 72

var (
	// ErrMismatch la contraseña no corresponde al hash almacenado.
	ErrMismatch = errors.New("password: no coincide")
	// ErrTooLong la contraseña supera MaxBytes.
	ErrTooLong = fmt.Errorf("la contraseña excede %d bytes", MaxBytes)
)

// Hasher abstrae el algoritmo de hash para los casos de uso.
type Hasher interface {
	Hash(plain string) (string, error)
	Check(plain, hash string) bool
	CompareDummy(plain string)
}

var _ Hasher = (*BcryptHasher)(nil)

// BcryptHasher genera y compara hashes bcrypt con un costo fijo.
type BcryptHasher struct {
	cost  int
	dummy []byte
}

// NewBcryptHasher construye el hasher; un costo fuera de rango usa bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("contrasena-inexistente"), cost)
	return &BcryptHasher{cost: cost, dummy: dummy}
}

// Cost costo efectivo configurado.
func (h *BcryptHasher) Cost() int { return h.cost }

// Hash devuelve el hash bcrypt de la contraseña en texto plano.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(b), nil
}

// Compare devuelve nil si plain corresponde a hash, ErrMismatch si no.
// Más de MaxBytes nunca coincide: bcrypt ignoraría el resto.
func (h *BcryptHasher) Compare(hash, plain string) error {
	if len(plain) > MaxBytes {
		h.CompareDummy(plain[:MaxBytes])
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("password: compare: %w", err)
}

// Check atajo booleano sobre Compare; cualquier error cuenta como no coincidente.
func (h *BcryptHasher) Check(plain, hash string) bool {
	return h.Compare(hash, plain) == nil
}

// CompareDummy gasta el mismo tiempo que una comparación real contra un hash fijo.
// Se usa cuando el usuario no existe para no revelarlo por tiempo de respuesta.
func (h *BcryptHasher) CompareDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
}
