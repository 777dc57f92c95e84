package model

import (
	"fmt"
	"strings"
)

// Zone is a DNS zone as reported by the remote API. Zones are read-only
// within a session; only their records are mutated.
type Zone struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Record is a DNS record belonging to exactly one zone. Name is the
// fully-qualified form (e.g. "www.example.com" or the zone apex
// "example.com").
type Record struct {
	ID      string `json:"id" yaml:"id"`
	ZoneID  string `json:"zone_id" yaml:"zone_id"`
	Type    string `json:"type" yaml:"type"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	TTL     int    `json:"ttl" yaml:"ttl"`
	Proxied bool   `json:"proxied" yaml:"proxied"`
}

// RecordPayload carries the fields of a create or update call. Name is
// fully qualified; the "@" apex shorthand is resolved before a payload is
// built.
type RecordPayload struct {
	Type    string `json:"type" yaml:"type"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	TTL     int    `json:"ttl" yaml:"ttl"`
	Proxied bool   `json:"proxied" yaml:"proxied"`
}

const (
	TypeA     = "A"
	TypeAAAA  = "AAAA"
	TypeCNAME = "CNAME"
	TypeMX    = "MX"
	TypeTXT   = "TXT"
	TypeNS    = "NS"
	TypeSRV   = "SRV"
	TypeCAA   = "CAA"
)

// TTLAuto is the TTL sentinel the remote API treats as "automatic".
const TTLAuto = 1

// Proxiable reports whether the proxied flag is meaningful for the given
// record type. Other types carry the flag but the remote ignores it.
func Proxiable(recordType string) bool {
	switch strings.ToUpper(recordType) {
	case TypeA, TypeAAAA, TypeCNAME:
		return true
	}
	return false
}

// Summary renders the one-line tree label for a record: type, name and
// content, with a proxied suffix for proxiable types and the raw TTL for
// the rest.
func (r Record) Summary() string {
	if Proxiable(r.Type) {
		status := "proxied"
		if !r.Proxied {
			status = "dns only"
		}
		return fmt.Sprintf("%s %s -> %s (%s)", r.Type, r.Name, r.Content, status)
	}
	return fmt.Sprintf("%s %s -> %s (ttl %d)", r.Type, r.Name, r.Content, r.TTL)
}

// TTLLabel renders a TTL for display, naming the automatic sentinel.
func TTLLabel(ttl int) string {
	if ttl == TTLAuto {
		return "auto"
	}
	return fmt.Sprintf("%d", ttl)
}

// ShortName strips the trailing zone suffix from a fully-qualified record
// name, returning "@" for the zone apex. The inverse of QualifyName.
func ShortName(name, zoneName string) string {
	if name == zoneName {
		return "@"
	}
	return strings.TrimSuffix(name, "."+zoneName)
}

// QualifyName expands a short record name against its zone: "@" means the
// apex, anything else gets the zone appended unless it is already fully
// qualified.
func QualifyName(short, zoneName string) string {
	if short == "@" {
		return zoneName
	}
	if short == zoneName || strings.HasSuffix(short, "."+zoneName) {
		return short
	}
	return short + "." + zoneName
}
