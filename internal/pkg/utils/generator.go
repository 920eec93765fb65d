package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

const transactionIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateTransactionID produces identifiers shaped like TXN1719576000000ABC123XYZ.
func GenerateTransactionID() (string, error) {
	max := big.NewInt(int64(len(transactionIDAlphabet)))

	random := make([]byte, 9)
	for i := range random {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		random[i] = transactionIDAlphabet[num.Int64()]
	}

	return strings.ToUpper(fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), random)), nil
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
