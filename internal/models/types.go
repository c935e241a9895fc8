package models

// Depth represents the requested thoroughness tier of a scan
type Depth string

const (
	DepthBasic         Depth = "basic"
	DepthStandard      Depth = "standard"
	DepthComprehensive Depth = "comprehensive"
)

// Valid reports whether d is one of the three known depth tiers
func (d Depth) Valid() bool {
	switch d {
	case DepthBasic, DepthStandard, DepthComprehensive:
		return true
	}
	return false
}

// AtLeast reports whether d is the same tier as other or a deeper one
func (d Depth) AtLeast(other Depth) bool {
	return depthRank[d] >= depthRank[other]
}

var depthRank = map[Depth]int{
	DepthBasic:         1,
	DepthStandard:      2,
	DepthComprehensive: 3,
}

// RiskLevel represents the synthesized risk classification of a scan
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank returns the ordinal severity of a risk level (low=1 .. high=3)
func (r RiskLevel) Rank() int {
	return riskRank[r]
}

var riskRank = map[RiskLevel]int{
	RiskLow:    1,
	RiskMedium: 2,
	RiskHigh:   3,
}

// DNSRecordType represents different types of DNS records
type DNSRecordType string

const (
	DNSRecordA     DNSRecordType = "A"
	DNSRecordAAAA  DNSRecordType = "AAAA"
	DNSRecordCNAME DNSRecordType = "CNAME"
	DNSRecordMX    DNSRecordType = "MX"
	DNSRecordTXT   DNSRecordType = "TXT"
	DNSRecordNS    DNSRecordType = "NS"
)
