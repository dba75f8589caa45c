// Copyright (c) 2024 Neomantra Corp

// Package itch50 decodes and processes NASDAQ TotalView-ITCH 5.0 messages.
package itch50

// Opcode identifies an ITCH 5.0 message's wire type — the single ASCII
// byte leading every frame's payload (§6).
type Opcode byte

const (
	OpcodeSystemEvent                Opcode = 'S'
	OpcodeStockDirectory             Opcode = 'R'
	OpcodeStockTradingAction         Opcode = 'H'
	OpcodeRegSHO                     Opcode = 'Y'
	OpcodeMarketParticipantPosition  Opcode = 'L'
	OpcodeMWCBDeclineLevel           Opcode = 'V'
	OpcodeMWCBBreach                 Opcode = 'W'
	OpcodeIPOQuotingPeriodUpdate     Opcode = 'K'
	OpcodeLULDAuctionCollar          Opcode = 'J'
	OpcodeOperationalHalt            Opcode = 'h'
	OpcodeAddOrder                   Opcode = 'A'
	OpcodeAddOrderMPID               Opcode = 'F'
	OpcodeOrderExecuted              Opcode = 'E'
	OpcodeOrderExecutedPrice         Opcode = 'C'
	OpcodeOrderCancel                Opcode = 'X'
	OpcodeOrderDelete                Opcode = 'D'
	OpcodeOrderReplace               Opcode = 'U'
	OpcodeTrade                      Opcode = 'P'
	OpcodeCrossTrade                 Opcode = 'Q'
	OpcodeBrokenTrade                Opcode = 'B'
	OpcodeNOII                       Opcode = 'I'
	OpcodeRPII                       Opcode = 'N'
	OpcodeDirectListingCapitalRaise  Opcode = 'O'
)

// Enumerated code sets used to validate message fields (§6), grounded on
// itch50_market_message.py's class-level dictionaries.
var (
	SystemEventCodes = map[byte]string{
		'O': "Start of Messages", 'S': "Start of System Hours",
		'Q': "Start of Market Hours", 'M': "End of Market Hours",
		'E': "End of System Hours", 'C': "End of Messages",
	}
	MarketCodes = map[byte]string{
		'N': "NYSE", 'A': "AMEX", 'P': "Arca", 'Q': "NASDAQ Global Select",
		'G': "NASDAQ Global Market", 'S': "NASDAQ Capital Market",
		'Z': "BATS", 'V': "Investors' Exchange", ' ': "Not available",
	}
	FinancialStatusCodes = map[byte]string{
		'D': "Deficient", 'E': "Delinquent", 'Q': "Bankrupt", 'S': "Suspended",
		'G': "Deficient and Bankrupt", 'H': "Deficient and Delinquent",
		'J': "Delinquent and Bankrupt", 'K': "Deficient, Delinquent and Bankrupt",
		'C': "Creations and/or Redemptions Suspended", 'N': "Normal", ' ': "Not available",
	}
	RoundLotsOnlyCodes     = map[byte]string{'Y': "Only round lots", 'N': "Odd and Mixed lots"}
	TradingStateCodes      = map[byte]string{'H': "Halted", 'P': "Paused", 'Q': "Quotation only", 'T': "Trading"}
	PrimaryMarketMakerCodes = map[byte]string{'Y': "Primary market maker", 'N': "Non-primary market maker"}
	MarketMakerModeCodes   = map[byte]string{'N': "Normal", 'P': "Passive", 'S': "Syndicate", 'R': "Pre-syndicate", 'L': "Penalty"}
	MarketParticipantStateCodes = map[byte]string{
		'A': "Active", 'E': "Excused", 'W': "Withdrawn", 'S': "Suspended", 'D': "Deleted",
	}
	InterestCodes = map[byte]string{
		'B': "RPI orders avail on buy side", 'S': "RPI orders avail on sell side",
		'A': "RPI orders avail on both sides", 'N': "No RPI orders avail",
	}
	CrossTypeCodes = map[byte]string{
		'O': "NASDAQ Opening Cross", 'C': "NASDAQ Closing Cross",
		'H': "Cross for IPO and Halted Securities",
		'I': "NASDAQ Cross Network: Intraday and Post-Close Cross",
	}
)

func validateCode(code byte, set map[byte]string) bool {
	_, ok := set[code]
	return ok
}
