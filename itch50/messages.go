// Copyright (c) 2024 Neomantra Corp

package itch50

import (
	"encoding/binary"
	"strings"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// trimPadded strips the ASCII space padding the wire format uses for
// fixed-width symbol/MPID fields (§6).
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

// SystemEventMessage (opcode 'S'): a session-boundary marker.
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

// StockDirectoryMessage (opcode 'R'): per-symbol static reference data.
type StockDirectoryMessage struct {
	Header
	Stock            string
	Category         byte
	Status           byte
	RoundLotSize     uint32
	RoundLotsOnly    byte
	IssueClassif     byte
	IssueSubType     string
	Authenticity     byte
	ShortSaleThresh  byte
	IPOFlag          byte
	LULDRefPriceTier byte
	ETPFlag          byte
	ETPLeverage      uint32
	InverseIndicator byte
}

const stockDirectoryMessageSize = 1 + HeaderSize + 28

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
	m.IssueClassif = body[15]
	m.IssueSubType = trimPadded(body[16:18])
	m.Authenticity = body[18]
	m.ShortSaleThresh = body[19]
	m.IPOFlag = body[20]
	m.LULDRefPriceTier = body[21]
	m.ETPFlag = body[22]
	m.ETPLeverage = binary.BigEndian.Uint32(body[23:27])
	m.InverseIndicator = body[27]
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
	body[15] = m.IssueClassif
	putPadded(body[16:18], m.IssueSubType)
	body[18] = m.Authenticity
	body[19] = m.ShortSaleThresh
	body[20] = m.IPOFlag
	body[21] = m.LULDRefPriceTier
	body[22] = m.ETPFlag
	binary.BigEndian.PutUint32(body[23:27], m.ETPLeverage)
	body[27] = m.InverseIndicator
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

// MarketParticipantPositionMessage (opcode 'L').
type MarketParticipantPositionMessage struct {
	Header
	MPID              string
	Stock             string
	PrimaryMarketMaker byte
	MarketMakerMode   byte
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

// AddOrderMessage (opcode 'A'): a new resting order with no MPID attribution.
type AddOrderMessage struct {
	Header
	OrderRef uint64
	BSIndicator byte
	Shares   uint32
	Stock    string
	Price    uint32
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

// AddOrderMPIDMessage (opcode 'F'): AddOrderMessage plus an MPID.
type AddOrderMPIDMessage struct {
	Header
	OrderRef    uint64
	BSIndicator byte
	Shares      uint32
	Stock       string
	Price       uint32
	Attribution string
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
	m.Attribution = trimPadded(body[25:29])
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
	putPadded(body[25:29], m.Attribution)
	return b, nil
}

// OrderExecutedMessage (opcode 'E'): a resting order filled at its own price.
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

// OrderExecutedPriceMessage (opcode 'C'): a fill at a price potentially
// different from the resting order's own price (e.g. sub-penny or cross).
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

// OrderCancelMessage (opcode 'X'): a partial cancel of a resting order.
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

// OrderDeleteMessage (opcode 'D'): full removal of a resting order.
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

// OrderReplaceMessage (opcode 'U'): atomically deletes original_ref and
// adds new_ref at a new price/size, preserving no queue position.
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

// TradeMessage (opcode 'P'): a non-displayable (dark) execution that
// doesn't affect the book.
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
	Shares    uint64
	Stock     string
	CrossPrice uint32
	MatchNum  uint64
	CrossType byte
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
	body := b[1+HeaderSize:]
	m.MatchNum = binary.BigEndian.Uint64(body[0:8])
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

// NoiiMessage (opcode 'I'): Net Order Imbalance Indicator, published
// during auctions.
type NoiiMessage struct {
	Header
	PairedShares           uint64
	ImbalanceShares        uint64
	ImbalanceDirection     byte
	Stock                  string
	FarPrice               uint32
	NearPrice              uint32
	CurrentRefPrice        uint32
	CrossType              byte
	PriceVariationIndicator byte
}

const noiiMessageSize = 1 + HeaderSize + 39

func (*NoiiMessage) Opcode() Opcode { return OpcodeNOII }

func (m *NoiiMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeNOII, noiiMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.PairedShares = binary.BigEndian.Uint64(body[0:8])
	m.ImbalanceShares = binary.BigEndian.Uint64(body[8:16])
	m.ImbalanceDirection = body[16]
	m.Stock = trimPadded(body[17:25])
	m.FarPrice = binary.BigEndian.Uint32(body[25:29])
	m.NearPrice = binary.BigEndian.Uint32(body[29:33])
	m.CurrentRefPrice = binary.BigEndian.Uint32(body[33:37])
	m.CrossType = body[37]
	m.PriceVariationIndicator = body[38]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *NoiiMessage) Raw() ([]byte, error) {
	b := make([]byte, noiiMessageSize)
	b[0] = byte(OpcodeNOII)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.PairedShares)
	binary.BigEndian.PutUint64(body[8:16], m.ImbalanceShares)
	body[16] = m.ImbalanceDirection
	putPadded(body[17:25], m.Stock)
	binary.BigEndian.PutUint32(body[25:29], m.FarPrice)
	binary.BigEndian.PutUint32(body[29:33], m.NearPrice)
	binary.BigEndian.PutUint32(body[33:37], m.CurrentRefPrice)
	body[37] = m.CrossType
	body[38] = m.PriceVariationIndicator
	return b, nil
}

// Validate checks CrossType against the cross type code set (§6).
func (m *NoiiMessage) Validate() error {
	if !validateCode(m.CrossType, CrossTypeCodes) {
		return itchlob.InvalidCodeError("CrossType", m.CrossType)
	}
	return nil
}

// RpiiMessage (opcode 'N'): Retail Price Improvement Indicator.
type RpiiMessage struct {
	Header
	Stock    string
	Interest byte
}

const rpiiMessageSize = 1 + HeaderSize + 9

func (*RpiiMessage) Opcode() Opcode { return OpcodeRPII }

func (m *RpiiMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeRPII, rpiiMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.Interest = body[8]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *RpiiMessage) Raw() ([]byte, error) {
	b := make([]byte, rpiiMessageSize)
	b[0] = byte(OpcodeRPII)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	body[8] = m.Interest
	return b, nil
}

// Validate checks Interest against the RPI interest code set (§6).
func (m *RpiiMessage) Validate() error {
	if !validateCode(m.Interest, InterestCodes) {
		return itchlob.InvalidCodeError("Interest", m.Interest)
	}
	return nil
}

// MWCBDeclineLevelMessage (opcode 'V'): Market-Wide Circuit Breaker levels
// published at the start of the day.
type MWCBDeclineLevelMessage struct {
	Header
	Level1 uint64
	Level2 uint64
	Level3 uint64
}

const mwcbDeclineLevelMessageSize = 1 + HeaderSize + 24

func (*MWCBDeclineLevelMessage) Opcode() Opcode { return OpcodeMWCBDeclineLevel }

func (m *MWCBDeclineLevelMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeMWCBDeclineLevel, mwcbDeclineLevelMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Level1 = binary.BigEndian.Uint64(body[0:8])
	m.Level2 = binary.BigEndian.Uint64(body[8:16])
	m.Level3 = binary.BigEndian.Uint64(body[16:24])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *MWCBDeclineLevelMessage) Raw() ([]byte, error) {
	b := make([]byte, mwcbDeclineLevelMessageSize)
	b[0] = byte(OpcodeMWCBDeclineLevel)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	binary.BigEndian.PutUint64(body[0:8], m.Level1)
	binary.BigEndian.PutUint64(body[8:16], m.Level2)
	binary.BigEndian.PutUint64(body[16:24], m.Level3)
	return b, nil
}

// MWCBBreachMessage (opcode 'W'): a circuit breaker level has been breached.
type MWCBBreachMessage struct {
	Header
	BreachedLevel byte
}

const mwcbBreachMessageSize = 1 + HeaderSize + 1

func (*MWCBBreachMessage) Opcode() Opcode { return OpcodeMWCBBreach }

func (m *MWCBBreachMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeMWCBBreach, mwcbBreachMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.BreachedLevel = body[0]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *MWCBBreachMessage) Raw() ([]byte, error) {
	b := make([]byte, mwcbBreachMessageSize)
	b[0] = byte(OpcodeMWCBBreach)
	putHeader(b[1:1+HeaderSize], m.Header)
	b[1+HeaderSize] = m.BreachedLevel
	return b, nil
}

// IPOQuotingPeriodUpdateMessage (opcode 'K').
type IPOQuotingPeriodUpdateMessage struct {
	Header
	Stock                        string
	IPOQuotationReleaseTime      uint32
	IPOQuotationReleaseQualifier byte
	IPOPrice                     uint32
}

const ipoQuotingPeriodUpdateMessageSize = 1 + HeaderSize + 17

func (*IPOQuotingPeriodUpdateMessage) Opcode() Opcode { return OpcodeIPOQuotingPeriodUpdate }

func (m *IPOQuotingPeriodUpdateMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeIPOQuotingPeriodUpdate, ipoQuotingPeriodUpdateMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.IPOQuotationReleaseTime = binary.BigEndian.Uint32(body[8:12])
	m.IPOQuotationReleaseQualifier = body[12]
	m.IPOPrice = binary.BigEndian.Uint32(body[13:17])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *IPOQuotingPeriodUpdateMessage) Raw() ([]byte, error) {
	b := make([]byte, ipoQuotingPeriodUpdateMessageSize)
	b[0] = byte(OpcodeIPOQuotingPeriodUpdate)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	binary.BigEndian.PutUint32(body[8:12], m.IPOQuotationReleaseTime)
	body[12] = m.IPOQuotationReleaseQualifier
	binary.BigEndian.PutUint32(body[13:17], m.IPOPrice)
	return b, nil
}

// LULDAuctionCollarMessage (opcode 'J').
type LULDAuctionCollarMessage struct {
	Header
	Stock                    string
	AuctionCollarRefPrice    uint32
	UpperAuctionCollarPrice  uint32
	LowerAuctionCollarPrice  uint32
	AuctionCollarExtension   uint32
}

const luldAuctionCollarMessageSize = 1 + HeaderSize + 24

func (*LULDAuctionCollarMessage) Opcode() Opcode { return OpcodeLULDAuctionCollar }

func (m *LULDAuctionCollarMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeLULDAuctionCollar, luldAuctionCollarMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.AuctionCollarRefPrice = binary.BigEndian.Uint32(body[8:12])
	m.UpperAuctionCollarPrice = binary.BigEndian.Uint32(body[12:16])
	m.LowerAuctionCollarPrice = binary.BigEndian.Uint32(body[16:20])
	m.AuctionCollarExtension = binary.BigEndian.Uint32(body[20:24])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *LULDAuctionCollarMessage) Raw() ([]byte, error) {
	b := make([]byte, luldAuctionCollarMessageSize)
	b[0] = byte(OpcodeLULDAuctionCollar)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	binary.BigEndian.PutUint32(body[8:12], m.AuctionCollarRefPrice)
	binary.BigEndian.PutUint32(body[12:16], m.UpperAuctionCollarPrice)
	binary.BigEndian.PutUint32(body[16:20], m.LowerAuctionCollarPrice)
	binary.BigEndian.PutUint32(body[20:24], m.AuctionCollarExtension)
	return b, nil
}

// OperationalHaltMessage (opcode 'h').
type OperationalHaltMessage struct {
	Header
	Stock      string
	HaltStatus byte
	HaltReason byte
}

const operationalHaltMessageSize = 1 + HeaderSize + 10

func (*OperationalHaltMessage) Opcode() Opcode { return OpcodeOperationalHalt }

func (m *OperationalHaltMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeOperationalHalt, operationalHaltMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.HaltStatus = body[8]
	m.HaltReason = body[9]
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *OperationalHaltMessage) Raw() ([]byte, error) {
	b := make([]byte, operationalHaltMessageSize)
	b[0] = byte(OpcodeOperationalHalt)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	body[8] = m.HaltStatus
	body[9] = m.HaltReason
	return b, nil
}

// DirectListingCapitalRaiseMessage (opcode 'O').
type DirectListingCapitalRaiseMessage struct {
	Header
	Stock             string
	DLCREventType     byte
	RefPrice          uint32
	UpperPriceLimit   uint32
	LowerPriceLimit   uint32
	MaxPriceVariation uint32
	Quantity          uint64
	QuantityLimit     uint32
	QuantityLimitType uint32
}

const directListingCapitalRaiseMessageSize = 1 + HeaderSize + 41

func (*DirectListingCapitalRaiseMessage) Opcode() Opcode { return OpcodeDirectListingCapitalRaise }

func (m *DirectListingCapitalRaiseMessage) FillRaw(b []byte) error {
	if err := checkSize(b, OpcodeDirectListingCapitalRaise, directListingCapitalRaiseMessageSize); err != nil {
		return err
	}
	if err := fillHeader(b[1:1+HeaderSize], &m.Header); err != nil {
		return err
	}
	body := b[1+HeaderSize:]
	m.Stock = trimPadded(body[0:8])
	m.DLCREventType = body[8]
	m.RefPrice = binary.BigEndian.Uint32(body[9:13])
	m.UpperPriceLimit = binary.BigEndian.Uint32(body[13:17])
	m.LowerPriceLimit = binary.BigEndian.Uint32(body[17:21])
	m.MaxPriceVariation = binary.BigEndian.Uint32(body[21:25])
	m.Quantity = binary.BigEndian.Uint64(body[25:33])
	m.QuantityLimit = binary.BigEndian.Uint32(body[33:37])
	m.QuantityLimitType = binary.BigEndian.Uint32(body[37:41])
	return nil
}

// Raw encodes m back to its wire form, the inverse of FillRaw.
func (m *DirectListingCapitalRaiseMessage) Raw() ([]byte, error) {
	b := make([]byte, directListingCapitalRaiseMessageSize)
	b[0] = byte(OpcodeDirectListingCapitalRaise)
	putHeader(b[1:1+HeaderSize], m.Header)
	body := b[1+HeaderSize:]
	putPadded(body[0:8], m.Stock)
	body[8] = m.DLCREventType
	binary.BigEndian.PutUint32(body[9:13], m.RefPrice)
	binary.BigEndian.PutUint32(body[13:17], m.UpperPriceLimit)
	binary.BigEndian.PutUint32(body[17:21], m.LowerPriceLimit)
	binary.BigEndian.PutUint32(body[21:25], m.MaxPriceVariation)
	binary.BigEndian.PutUint64(body[25:33], m.Quantity)
	binary.BigEndian.PutUint32(body[33:37], m.QuantityLimit)
	binary.BigEndian.PutUint32(body[37:41], m.QuantityLimitType)
	return b, nil
}
