package model

import "fmt"

// DocumentType enumerates the identity documents the aggregator accepts
// on createCustomer.
type DocumentType string

const (
	DocPAN      DocumentType = "PAN"
	DocDL       DocumentType = "DL"
	DocVoterID  DocumentType = "VID"
	DocPassport DocumentType = "PASS"
)

var documentCodes = map[DocumentType]int{
	DocPAN:      1,
	DocDL:       2,
	DocVoterID:  3,
	DocPassport: 4,
}

// Code maps the document type to the numeric code the wire expects.
func (d DocumentType) Code() (int, error) {
	code, ok := documentCodes[d]
	if !ok {
		return 0, fmt.Errorf("unknown document type %q", string(d))
	}
	return code, nil
}
