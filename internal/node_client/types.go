package node_client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Int decodes an integer sent either as a JSON number or as a numeric string.
type Int int64

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*i = 0
			return nil
		}
		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// integral floats such as 1.2e3 are accepted, fractions are not
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("invalid integer %s", string(data))
		}
		v = int64(f)
	}

	*i = Int(v)
	return nil
}

// String decodes a value sent either as a JSON string or as a JSON number.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = String(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid string %s", string(data))
	}
	*s = String(n.String())

	return nil
}

type Block struct {
	ID            Int           `json:"id"`
	Hash          string        `json:"hash"`
	Nonce         String        `json:"nonce"`
	Difficulty    Int           `json:"difficulty"`
	Timestamp     Int           `json:"timestamp"`
	MerkleRoot    string        `json:"merkleRoot"`
	LastBlockHash string        `json:"lastBlockHash"`
	Transactions  []Transaction `json:"transactions"`
}

type Transaction struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Amount     Int    `json:"amount"`
	Fee        Int    `json:"fee"`
	TxID       string `json:"txid"`
	SigningKey string `json:"signingKey"`
	Signature  string `json:"signature"`
}

type PeerName struct {
	Name        string `json:"name"`
	NetworkName string `json:"networkName"`
	Version     string `json:"version"`
}

type PeerStats struct {
	CurrentBlock Int `json:"current_block"`
}

type blockCount struct {
	Count Int `json:"count"`
}
