// Copyright (c) 2024 Neomantra Corp

package itch41

import (
	"encoding/binary"
	"strings"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

func trimPadded(b []byte) string {
	return strings.TrimRight(string(b), " ")
}

// putPadded writes s into dst left-justified, space-padding the remainder —
// the inverse of trimPadded.
func putPadded(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = ' '
	}
}

func checkSize(b []byte, opcode Opcode, want int) error {
	if len(b) < want {
		return itchlob.ShortPayloadError(byte(opcode), len(b), want)
	}
	return nil
}

// SecondsMessage (opcode 'T') carries seconds-since-midnight; it has no
// Header of its own — it IS the clock the rest of the format's timestamps
// are relative to (§6).
type SecondsMessage struct {
	Seconds uint32
}

const secondsMessageSize = 1 + 4

func (*SecondsMessage) Opcode() Opcode { return OpcodeSeconds }

func (m *SecondsMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeSeconds, secondsMessageSize); err != nil {
		return err
	}
	m.Seconds = binary.BigEndian.Uint32(b[1:5])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *SecondsMessage) Raw() ([]byte, error) {
	b := make([]byte, secondsMessageSize)
	b[0] = byte(OpcodeSeconds)
	binary.BigEndian.PutUint32(b[1:5], m.Seconds)
	return b, nil
}

// SystemEventMessage (opcode 'S').
type SystemEventMessage struct {
	Header
	Code byte
}

const systemEventMessageSize = 1 + HeaderSize + 1

func (*SystemEventMessage) Opcode() Opcode { return OpcodeSystemEvent }

func (m *SystemEventMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeSystemEvent, systemEventMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	m.Code = b[1+HeaderSize]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *SystemEventMessage) Raw() ([]byte, error) {
	b := make([]byte, systemEventMessageSize)
	b[0] = byte(OpcodeSystemEvent)
	putHeader(b[1:1+HeaderSize], m.Header)
	b[1+HeaderSize] = m.Code
	return b, nil
}

// Validate checks Code against the system event code set (§6).
func (m *SystemEventMessage) Validate() error {
	if !validateCode(m.Code, SystemEventCodes) {
		return itchlob.InvalidCodeError("Code", m.Code)
	}
	return nil
}

// StockDirectoryMessage (opcode 'R').
type StockDirectoryMessage struct {
	Header
	Stock      string
	Category   byte
	Status     byte
	RoundLotSize uint32
	RoundLotsOnly byte
}

const stockDirectoryMessageSize = 1 + HeaderSize + 15

func (*StockDirectoryMessage) Opcode() Opcode { return OpcodeStockDirectory }

func (m *StockDirectoryMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeStockDirectory, stockDirectoryMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.Category = body[8]
	m.Status = body[9]
	m.RoundLotSize = binary.BigEndian.Uint32(body[10:14])
	m.RoundLotsOnly = body[14]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *StockDirectoryMessage) Raw() ([]byte, error) {
	b := make([]byte, stockDirectoryMessageSize)
	b[0] = byte(OpcodeStockDirectory)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	body[8] = m.Category
	body[9] = m.Status
	binary.BigEndian.PutUint32(body[10:14], m.RoundLotSize)
	body[14] = m.RoundLotsOnly
	return b, nil
}

// Validate checks Category, Status and RoundLotsOnly against their §6 code sets.
func (m *StockDirectoryMessage) Validate() error {
	if !validateCode(m.Category, MarketCodes) {
		return itchlob.InvalidCodeError("Category", m.Category)
	}
	if !validateCode(m.Status, FinancialStatusCodes) {
		return itchlob.InvalidCodeError("Status", m.Status)
	}
	if !validateCode(m.RoundLotsOnly, RoundLotsOnlyCodes) {
		return itchlob.InvalidCodeError("RoundLotsOnly", m.RoundLotsOnly)
	}
	return nil
}

// StockTradingActionMessage (opcode 'H').
type StockTradingActionMessage struct {
	Header
	Stock    string
	State    byte
	Reserved byte
	Reason   string
}

const stockTradingActionMessageSize = 1 + HeaderSize + 14

func (*StockTradingActionMessage) Opcode() Opcode { return OpcodeStockTradingAction }

func (m *StockTradingActionMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeStockTradingAction, stockTradingActionMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.State = body[8]
	m.Reserved = body[9]
	m.Reason = trimPadded(body[10:14])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *StockTradingActionMessage) Raw() ([]byte, error) {
	b := make([]byte, stockTradingActionMessageSize)
	b[0] = byte(OpcodeStockTradingAction)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	body[8] = m.State
	body[9] = m.Reserved
	putPadded(body[10:14], m.Reason)
	return b, nil
}

// Validate checks State against the trading state code set (§6).
func (m *StockTradingActionMessage) Validate() error {
	if !validateCode(m.State, TradingStateCodes) {
		return itchlob.InvalidCodeError("State", m.State)
	}
	return nil
}

// RegSHOMessage (opcode 'Y').
type RegSHOMessage struct {
	Header
	Stock  string
	Action byte
}

const regSHOMessageSize = 1 + HeaderSize + 9

func (*RegSHOMessage) Opcode() Opcode { return OpcodeRegSHO }

func (m *RegSHOMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeRegSHO, regSHOMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.Action = body[8]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *RegSHOMessage) Raw() ([]byte, error) {
	b := make([]byte, regSHOMessageSize)
	b[0] = byte(OpcodeRegSHO)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	body[8] = m.Action
	return b, nil
}

// MarketParticipantPositionMessage (opcode 'L'). The source defines this
// fully but leaves it out of its decode dispatch table "temporarily for
// debugging"; nothing about the wire layout is actually incomplete, so
// this port restores it to the opcode set (SPEC_FULL.md §4.E lists it).
type MarketParticipantPositionMessage struct {
	Header
	MPID                   string
	Stock                  string
	PrimaryMarketMaker     byte
	MarketMakerMode        byte
	MarketParticipantState byte
}

const marketParticipantPositionMessageSize = 1 + HeaderSize + 15

func (*MarketParticipantPositionMessage) Opcode() Opcode { return OpcodeMarketParticipantPosition }

func (m *MarketParticipantPositionMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeMarketParticipantPosition, marketParticipantPositionMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.MPID = trimPadded(body[0:4])
	m.Stock = trimPadded(body[4:12])
	m.PrimaryMarketMaker = body[12]
	m.MarketMakerMode = body[13]
	m.MarketParticipantState = body[14]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *MarketParticipantPositionMessage) Raw() ([]byte, error) {
	b := make([]byte, marketParticipantPositionMessageSize)
	b[0] = byte(OpcodeMarketParticipantPosition)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:4], m.MPID)
	putPadded(body[4:12], m.Stock)
	body[12] = m.PrimaryMarketMaker
	body[13] = m.MarketMakerMode
	body[14] = m.MarketParticipantState
	return b, nil
}

// Validate checks PrimaryMarketMaker, MarketMakerMode and
// MarketParticipantState against their §6 code sets.
func (m *MarketParticipantPositionMessage) Validate() error {
	if !validateCode(m.PrimaryMarketMaker, PrimaryMarketMakerCodes) {
		return itchlob.InvalidCodeError("PrimaryMarketMaker", m.PrimaryMarketMaker)
	}
	if !validateCode(m.MarketMakerMode, MarketMakerModeCodes) {
		return itchlob.InvalidCodeError("MarketMakerMode", m.MarketMakerMode)
	}
	if !validateCode(m.MarketParticipantState, MarketParticipantStateCodes) {
		return itchlob.InvalidCodeError("MarketParticipantState", m.MarketParticipantState)
	}
	return nil
}

// AddOrderMessage (opcode 'A').
type AddOrderMessage struct {
	Header
	OrderRef    uint64
	BSIndicator byte
	Shares      uint32
	Stock       string
	Price       uint32
}

const addOrderMessageSize = 1 + HeaderSize + 25

func (*AddOrderMessage) Opcode() Opcode { return OpcodeAddOrder }

func (m *AddOrderMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeAddOrder, addOrderMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	m.BSIndicator = body[8]
	m.Shares = binary.BigEndian.Uint32(body[9:13])
	m.Stock = trimPadded(body[13:21])
	m.Price = binary.BigEndian.Uint32(body[21:25])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *AddOrderMessage) Raw() ([]byte, error) {
	b := make([]byte, addOrderMessageSize)
	b[0] = byte(OpcodeAddOrder)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OrderRef)
	body[8] = m.BSIndicator
	binary.BigEndian.PutUint32(body[9:13], m.Shares)
	putPadded(body[13:21], m.Stock)
	binary.BigEndian.PutUint32(body[21:25], m.Price)
	return b, nil
}

// AddOrderMPIDMessage (opcode 'F').
type AddOrderMPIDMessage struct {
	Header
	OrderRef    uint64
	BSIndicator byte
	Shares      uint32
	Stock       string
	Price       uint32
	MPID        string
}

const addOrderMPIDMessageSize = 1 + HeaderSize + 29

func (*AddOrderMPIDMessage) Opcode() Opcode { return OpcodeAddOrderMPID }

func (m *AddOrderMPIDMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeAddOrderMPID, addOrderMPIDMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	m.BSIndicator = body[8]
	m.Shares = binary.BigEndian.Uint32(body[9:13])
	m.Stock = trimPadded(body[13:21])
	m.Price = binary.BigEndian.Uint32(body[21:25])
	m.MPID = trimPadded(body[25:29])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *AddOrderMPIDMessage) Raw() ([]byte, error) {
	b := make([]byte, addOrderMPIDMessageSize)
	b[0] = byte(OpcodeAddOrderMPID)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OrderRef)
	body[8] = m.BSIndicator
	binary.BigEndian.PutUint32(body[9:13], m.Shares)
	putPadded(body[13:21], m.Stock)
	binary.BigEndian.PutUint32(body[21:25], m.Price)
	putPadded(body[25:29], m.MPID)
	return b, nil
}

// OrderExecutedMessage (opcode 'E').
type OrderExecutedMessage struct {
	Header
	OrderRef uint64
	Shares   uint32
	MatchNum uint64
}

const orderExecutedMessageSize = 1 + HeaderSize + 20

func (*OrderExecutedMessage) Opcode() Opcode { return OpcodeOrderExecuted }

func (m *OrderExecutedMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeOrderExecuted, orderExecutedMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	m.Shares = binary.BigEndian.Uint32(body[8:12])
	m.MatchNum = binary.BigEndian.Uint64(body[12:20])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *OrderExecutedMessage) Raw() ([]byte, error) {
	b := make([]byte, orderExecutedMessageSize)
	b[0] = byte(OpcodeOrderExecuted)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OrderRef)
	binary.BigEndian.PutUint32(body[8:12], m.Shares)
	binary.BigEndian.PutUint64(body[12:20], m.MatchNum)
	return b, nil
}

// OrderExecutedPriceMessage (opcode 'C').
type OrderExecutedPriceMessage struct {
	Header
	OrderRef       uint64
	Shares         uint32
	MatchNum       uint64
	Printable      byte
	ExecutionPrice uint32
}

const orderExecutedPriceMessageSize = 1 + HeaderSize + 25

func (*OrderExecutedPriceMessage) Opcode() Opcode { return OpcodeOrderExecutedPrice }

func (m *OrderExecutedPriceMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeOrderExecutedPrice, orderExecutedPriceMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	m.Shares = binary.BigEndian.Uint32(body[8:12])
	m.MatchNum = binary.BigEndian.Uint64(body[12:20])
	m.Printable = body[20]
	m.ExecutionPrice = binary.BigEndian.Uint32(body[21:25])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *OrderExecutedPriceMessage) Raw() ([]byte, error) {
	b := make([]byte, orderExecutedPriceMessageSize)
	b[0] = byte(OpcodeOrderExecutedPrice)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OrderRef)
	binary.BigEndian.PutUint32(body[8:12], m.Shares)
	binary.BigEndian.PutUint64(body[12:20], m.MatchNum)
	body[20] = m.Printable
	binary.BigEndian.PutUint32(body[21:25], m.ExecutionPrice)
	return b, nil
}

// OrderCancelMessage (opcode 'X').
type OrderCancelMessage struct {
	Header
	OrderRef       uint64
	CanceledShares uint32
}

const orderCancelMessageSize = 1 + HeaderSize + 12

func (*OrderCancelMessage) Opcode() Opcode { return OpcodeOrderCancel }

func (m *OrderCancelMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeOrderCancel, orderCancelMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	m.CanceledShares = binary.BigEndian.Uint32(body[8:12])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *OrderCancelMessage) Raw() ([]byte, error) {
	b := make([]byte, orderCancelMessageSize)
	b[0] = byte(OpcodeOrderCancel)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OrderRef)
	binary.BigEndian.PutUint32(body[8:12], m.CanceledShares)
	return b, nil
}

// OrderDeleteMessage (opcode 'D').
type OrderDeleteMessage struct {
	Header
	OrderRef uint64
}

const orderDeleteMessageSize = 1 + HeaderSize + 8

func (*OrderDeleteMessage) Opcode() Opcode { return OpcodeOrderDelete }

func (m *OrderDeleteMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeOrderDelete, orderDeleteMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *OrderDeleteMessage) Raw() ([]byte, error) {
	b := make([]byte, orderDeleteMessageSize)
	b[0] = byte(OpcodeOrderDelete)
	putHeader(b[1:1+HeaderSize], m.Header)
	binary.BigEndian.PutUint64(b[1+HeaderSize:1+HeaderSize+8], m.OrderRef)
	return b, nil
}

// OrderReplaceMessage (opcode 'U').
type OrderReplaceMessage struct {
	Header
	OriginalRef uint64
	NewRef      uint64
	Shares      uint32
	Price       uint32
}

const orderReplaceMessageSize = 1 + HeaderSize + 24

func (*OrderReplaceMessage) Opcode() Opcode { return OpcodeOrderReplace }

func (m *OrderReplaceMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeOrderReplace, orderReplaceMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OriginalRef = binary.BigEndian.Uint64(body[0:8])
	m.NewRef = binary.BigEndian.Uint64(body[8:16])
	m.Shares = binary.BigEndian.Uint32(body[16:20])
	m.Price = binary.BigEndian.Uint32(body[20:24])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *OrderReplaceMessage) Raw() ([]byte, error) {
	b := make([]byte, orderReplaceMessageSize)
	b[0] = byte(OpcodeOrderReplace)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OriginalRef)
	binary.BigEndian.PutUint64(body[8:16], m.NewRef)
	binary.BigEndian.PutUint32(body[16:20], m.Shares)
	binary.BigEndian.PutUint32(body[20:24], m.Price)
	return b, nil
}

// TradeMessage (opcode 'P'): a non-displayable (hidden-liquidity) trade.
type TradeMessage struct {
	Header
	OrderRef    uint64
	BSIndicator byte
	Shares      uint32
	Stock       string
	Price       uint32
	MatchNum    uint64
}

const tradeMessageSize = 1 + HeaderSize + 33

func (*TradeMessage) Opcode() Opcode { return OpcodeTrade }

func (m *TradeMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeTrade, tradeMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.OrderRef = binary.BigEndian.Uint64(body[0:8])
	m.BSIndicator = body[8]
	m.Shares = binary.BigEndian.Uint32(body[9:13])
	m.Stock = trimPadded(body[13:21])
	m.Price = binary.BigEndian.Uint32(body[21:25])
	m.MatchNum = binary.BigEndian.Uint64(body[25:33])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *TradeMessage) Raw() ([]byte, error) {
	b := make([]byte, tradeMessageSize)
	b[0] = byte(OpcodeTrade)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.OrderRef)
	body[8] = m.BSIndicator
	binary.BigEndian.PutUint32(body[9:13], m.Shares)
	putPadded(body[13:21], m.Stock)
	binary.BigEndian.PutUint32(body[21:25], m.Price)
	binary.BigEndian.PutUint64(body[25:33], m.MatchNum)
	return b, nil
}

// CrossTradeMessage (opcode 'Q'): the result of an auction cross.
type CrossTradeMessage struct {
	Header
	Shares     uint64
	Stock      string
	CrossPrice uint32
	MatchNum   uint64
	CrossType  byte
}

const crossTradeMessageSize = 1 + HeaderSize + 29

func (*CrossTradeMessage) Opcode() Opcode { return OpcodeCrossTrade }

func (m *CrossTradeMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeCrossTrade, crossTradeMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Shares = binary.BigEndian.Uint64(body[0:8])
	m.Stock = trimPadded(body[8:16])
	m.CrossPrice = binary.BigEndian.Uint32(body[16:20])
	m.MatchNum = binary.BigEndian.Uint64(body[20:28])
	m.CrossType = body[28]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *CrossTradeMessage) Raw() ([]byte, error) {
	b := make([]byte, crossTradeMessageSize)
	b[0] = byte(OpcodeCrossTrade)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.Shares)
	putPadded(body[8:16], m.Stock)
	binary.BigEndian.PutUint32(body[16:20], m.CrossPrice)
	binary.BigEndian.PutUint64(body[20:28], m.MatchNum)
	body[28] = m.CrossType
	return b, nil
}

// Validate checks CrossType against the cross type code set (§6).
func (m *CrossTradeMessage) Validate() error {
	if !validateCode(m.CrossType, CrossTypeCodes) {
		return itchlob.InvalidCodeError("CrossType", m.CrossType)
	}
	return nil
}

// BrokenTradeMessage (opcode 'B'): a previously reported trade is voided.
type BrokenTradeMessage struct {
	Header
	MatchNum uint64
}

const brokenTradeMessageSize = 1 + HeaderSize + 8

func (*BrokenTradeMessage) Opcode() Opcode { return OpcodeBrokenTrade }

func (m *BrokenTradeMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeBrokenTrade, brokenTradeMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	m.MatchNum = binary.BigEndian.Uint64(b[1+HeaderSize : 1+HeaderSize+8])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *BrokenTradeMessage) Raw() ([]byte, error) {
	b := make([]byte, brokenTradeMessageSize)
	b[0] = byte(OpcodeBrokenTrade)
	putHeader(b[1:1+HeaderSize], m.Header)
	binary.BigEndian.PutUint64(b[1+HeaderSize:1+HeaderSize+8], m.MatchNum)
	return b, nil
}
