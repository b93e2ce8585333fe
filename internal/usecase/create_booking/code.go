package create_booking

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// maxCodeDraws ограничение перевыборов кода при UniqueCodePerContact
const maxCodeDraws = 10

var alphabetSize = big.NewInt(int64(len(domain.RetrievalCodeAlphabet)))

// generateRetrievalCode равномерно выбирает RetrievalCodeLength символов из RetrievalCodeAlphabet
func generateRetrievalCode() (string, error) {
	var b strings.Builder
	b.Grow(domain.RetrievalCodeLength)
	for i := 0; i < domain.RetrievalCodeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b.WriteByte(domain.RetrievalCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
