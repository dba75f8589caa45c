// Copyright (c) 2024 Neomantra Corp

// Package itch41 decodes and processes NASDAQ TotalView-ITCH 4.1 messages —
// the format's narrower predecessor to itch50, lacking the
// stock_locate/tracking_number header prefix and the EMC status channel.
package itch41

// Opcode identifies an ITCH 4.1 message's wire type — the single ASCII
// byte leading every frame's payload (§6).
type Opcode byte

const (
	OpcodeSeconds                   Opcode = 'T'
	OpcodeSystemEvent               Opcode = 'S'
	OpcodeStockDirectory            Opcode = 'R'
	OpcodeStockTradingAction        Opcode = 'H'
	OpcodeRegSHO                    Opcode = 'Y'
	OpcodeMarketParticipantPosition Opcode = 'L'
	OpcodeAddOrder                  Opcode = 'A'
	OpcodeAddOrderMPID              Opcode = 'F'
	OpcodeOrderExecuted             Opcode = 'E'
	OpcodeOrderExecutedPrice        Opcode = 'C'
	OpcodeOrderCancel               Opcode = 'X'
	OpcodeOrderDelete               Opcode = 'D'
	OpcodeOrderReplace              Opcode = 'U'
	OpcodeTrade                     Opcode = 'P'
	OpcodeCrossTrade                Opcode = 'Q'
	OpcodeBrokenTrade               Opcode = 'B'
)

// Enumerated code sets used to validate message fields (§6), grounded on
// itch41_market_message.py's class-level dictionaries. ITCH 4.1 has no
// MWCB/LULD/IPO/NOII/RPI/direct-listing opcodes, so it carries no
// interest-code or price-variation-indicator set beyond what its own
// message types reference.
var (
	SystemEventCodes = map[byte]string{
		'O': "Start of Messages", 'S': "Start of System Hours",
		'Q': "Start of Market Hours", 'M': "End of Market Hours",
		'E': "End of System Hours", 'C': "End of Messages",
	}
	MarketCodes = map[byte]string{
		'N': "NYSE", 'A': "AMEX", 'P': "Arca", 'Q': "NASDAQ Global Select",
		'G': "NASDAQ Global Market", 'S': "NASDAQ Capital Market",
		'Z': "BATS", ' ': "Not available",
	}
	FinancialStatusCodes = map[byte]string{
		'D': "Deficient", 'E': "Delinquent", 'Q': "Bankrupt", 'S': "Suspended",
		'G': "Deficient and Bankrupt", 'H': "Deficient and Delinquent",
		'J': "Delinquent and Bankrupt", 'K': "Deficient, Delinquent and Bankrupt",
		'N': "Normal", ' ': "Not available",
	}
	RoundLotsOnlyCodes         = map[byte]string{'Y': "Only round lots", 'N': "Odd and Mixed lots"}
	TradingStateCodes          = map[byte]string{'H': "Halted", 'P': "Paused", 'Q': "Quotation only", 'T': "Trading"}
	PrimaryMarketMakerCodes    = map[byte]string{'Y': "Primary market maker", 'N': "Non-primary market maker"}
	MarketMakerModeCodes       = map[byte]string{'N': "Normal", 'P': "Passive", 'S': "Syndicate", 'R': "Pre-syndicate", 'L': "Penalty"}
	MarketParticipantStateCodes = map[byte]string{
		'A': "Active", 'E': "Excused", 'W': "Withdrawn", 'S': "Suspended", 'D': "Deleted",
	}
	CrossTypeCodes = map[byte]string{
		'O': "Opening Cross", 'C': "Closing Cross",
		'H': "Cross for IPO and Halted / Paused Securities",
		'I': "NASDAQ Cross Network",
	}
)

func validateCode(code byte, set map[byte]string) bool {
	_, ok := set[code]
	return ok
}
