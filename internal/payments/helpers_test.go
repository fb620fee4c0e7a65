package payments

import (
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
)

const (
	testAccount = "gHb9CJAWyB4gj91VRWn96DkukG4bwdtyTh"
	testSecret  = "snoPBgXtMeMyMHUVTgbuqAfg1SUTb"
)

func testAccountConfig() Account {
	return Account{Address: testAccount, Secret: testSecret, Fee: 10}
}

func nopMetrics(ctrl *gomock.Controller) *MockMetrics {
	m := NewMockMetrics(ctrl)
	m.EXPECT().ObserveCycle(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveSign(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveSubmission(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveRollback(gomock.Any()).AnyTimes()
	m.EXPECT().SetSequence(gomock.Any()).AnyTimes()
	m.EXPECT().SetFatal(gomock.Any()).AnyTimes()
	return m
}

func nopRecorder(ctrl *gomock.Controller) *MockSubmissionRecorder {
	r := NewMockSubmissionRecorder(ctrl)
	r.EXPECT().RecordSubmission(gomock.Any(), gomock.Any()).AnyTimes()
	return r
}

func uint32Ptr(v uint32) *uint32 {
	return &v
}

func unsignedTx(id int64, amount string) model.Transaction {
	return model.Transaction{
		ID:      id,
		Address: "gDestination",
		Amount:  model.NativeAmount(decimal.RequireFromString(amount)),
	}
}

func signedTx(id int64, sequence uint32) model.Transaction {
	tx := unsignedTx(id, "1")
	tx.TxBlob = "BLOB"
	tx.TxHash = "HASH"
	tx.Sequence = uint32Ptr(sequence)
	return tx
}
