package pix

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/pixkit/pkg/sanitizer"
)

// Field identifiers of a static BR Code.
const (
	idPayloadFormat       = "00"
	idMerchantAccount     = "26"
	idMerchantCategory    = "52"
	idTransactionCurrency = "53"
	idTransactionAmount   = "54"
	idCountryCode         = "58"
	idMerchantName        = "59"
	idMerchantCity        = "60"
	idAdditionalData      = "62"
	idCRC                 = "63"

	idAccountGUI         = "00"
	idAccountKey         = "01"
	idAccountDescription = "02"
	idAdditionalTxID     = "05"
)

const (
	gui            = "br.gov.bcb.pix"
	currencyBRL    = "986"
	countryBR      = "BR"
	defaultTxID    = "***"
	maxFieldLength = 99
	maxNameLength  = 25
	maxCityLength  = 15
	maxTxIDLength  = 25
	maxAmountChars = 13
)

var txIDRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Payload holds the data encoded in a static PIX QR code.
type Payload struct {
	Key          string
	MerchantName string
	MerchantCity string
	Amount       decimal.Decimal // zero means the payer chooses the amount
	TxID         string          // alphanumeric, defaults to "***"
	Description  string
}

// Build renders the payload as a BR Code string including its CRC.
// Name and city are ASCII-folded and truncated to 25 and 15 characters;
// either one folding to nothing is an error.
func (p Payload) Build() (string, error) {
	key, err := ParseKey(p.Key)
	if err != nil {
		return "", err
	}

	name := clip(p.MerchantName, maxNameLength)
	if name == "" {
		return "", fmt.Errorf("%w: merchant name", ErrEmptyField)
	}
	city := clip(p.MerchantCity, maxCityLength)
	if city == "" {
		return "", fmt.Errorf("%w: merchant city", ErrEmptyField)
	}

	account := tlv(idAccountGUI, gui) + tlv(idAccountKey, key.Value)
	if desc := sanitizer.NormalizeWhitespace(sanitizer.ASCIIFold(p.Description)); desc != "" {
		account += tlv(idAccountDescription, desc)
	}
	if len(account) > maxFieldLength {
		return "", fmt.Errorf("%w: merchant account information is %d characters", ErrFieldTooLong, len(account))
	}

	txid := p.TxID
	if txid == "" {
		txid = defaultTxID
	} else if len(txid) > maxTxIDLength || !txIDRegex.MatchString(txid) {
		return "", ErrInvalidTxID
	}

	var b strings.Builder
	b.WriteString(tlv(idPayloadFormat, "01"))
	b.WriteString(tlv(idMerchantAccount, account))
	b.WriteString(tlv(idMerchantCategory, "0000"))
	b.WriteString(tlv(idTransactionCurrency, currencyBRL))

	if !p.Amount.IsZero() {
		if p.Amount.IsNegative() {
			return "", ErrInvalidAmount
		}
		amount := p.Amount.StringFixed(2)
		if len(amount) > maxAmountChars {
			return "", fmt.Errorf("%w: amount %s", ErrFieldTooLong, amount)
		}
		b.WriteString(tlv(idTransactionAmount, amount))
	}

	b.WriteString(tlv(idCountryCode, countryBR))
	b.WriteString(tlv(idMerchantName, name))
	b.WriteString(tlv(idMerchantCity, city))
	b.WriteString(tlv(idAdditionalData, tlv(idAdditionalTxID, txid)))

	b.WriteString(idCRC + "04")
	b.WriteString(fmt.Sprintf("%04X", CRC16([]byte(b.String()))))

	return b.String(), nil
}

// MaxDescriptionLength reports how many description characters fit in the
// merchant account field next to key once key is normalized.
func MaxDescriptionLength(key string) (int, error) {
	k, err := ParseKey(key)
	if err != nil {
		return 0, err
	}
	used := len(tlv(idAccountGUI, gui)) + len(tlv(idAccountKey, k.Value)) + len(idAccountDescription) + 2
	return max(maxFieldLength-used, 0), nil
}

// Fields splits a payload into its top-level TLV fields after verifying the CRC.
func Fields(payload string) (map[string]string, error) {
	if len(payload) < 8 || payload[len(payload)-8:len(payload)-4] != idCRC+"04" {
		return nil, ErrMalformed
	}

	body, sum := payload[:len(payload)-4], payload[len(payload)-4:]
	if fmt.Sprintf("%04X", CRC16([]byte(body))) != strings.ToUpper(sum) {
		return nil, ErrChecksumFailed
	}

	fields, err := splitTLV(payload)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// Subfields splits a nested template value such as field 26 or 62.
func Subfields(value string) (map[string]string, error) {
	return splitTLV(value)
}

func splitTLV(s string) (map[string]string, error) {
	fields := make(map[string]string)
	for len(s) > 0 {
		if len(s) < 4 {
			return nil, ErrMalformed
		}
		id := s[:2]
		n, err := strconv.Atoi(s[2:4])
		if err != nil || len(s) < 4+n {
			return nil, ErrMalformed
		}
		fields[id] = s[4 : 4+n]
		s = s[4+n:]
	}
	return fields, nil
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func clip(s string, limit int) string {
	s = sanitizer.NormalizeWhitespace(sanitizer.ASCIIFold(s))
	if len(s) > limit {
		s = strings.TrimSpace(s[:limit])
	}
	return s
}
