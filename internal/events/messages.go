package events

import (
	"encoding/json"
	"time"
)

// PaymentRecordedMessage announces a ledger mutation. SelfService marks
// payments that came in through the unauthenticated link path.
type PaymentRecordedMessage struct {
	MemberID    string    `json:"member_id"`
	Period      string    `json:"period"`
	Amount      int64     `json:"amount"`
	Paid        int64     `json:"paid"`
	Due         int64     `json:"due"`
	SelfService bool      `json:"self_service"`
	Timestamp   time.Time `json:"timestamp"`
}

// MemberCreatedMessage announces a new row in the Members tab.
type MemberCreatedMessage struct {
	MemberID  string    `json:"member_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

func NewPaymentRecordedMessage(memberID, period string, amount, paid, due int64, selfService bool) *PaymentRecordedMessage {
	return &PaymentRecordedMessage{
		MemberID:    memberID,
		Period:      period,
		Amount:      amount,
		Paid:        paid,
		Due:         due,
		SelfService: selfService,
		Timestamp:   time.Now(),
	}
}

func NewMemberCreatedMessage(memberID, name string) *MemberCreatedMessage {
	return &MemberCreatedMessage{MemberID: memberID, Name: name, Timestamp: time.Now()}
}

func (m *PaymentRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func PaymentRecordedMessageFromJSON(data []byte) (*PaymentRecordedMessage, error) {
	var msg PaymentRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (m *MemberCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func MemberCreatedMessageFromJSON(data []byte) (*MemberCreatedMessage, error) {
	var msg MemberCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
