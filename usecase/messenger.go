package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/liteapi"
	"github.com/tonkeeper/tongo/tlb"
	tgwallet "github.com/tonkeeper/tongo/wallet"
)

var ErrorTimeOut = fmt.Errorf("timeout for new seqno")

// MessengerInteractor submits value transfers through the custodial keeper
// wallet. The wallet custodies the jar account, so every transfer is signed
// with the keeper key no matter which ledger-side account it debits; the
// from account is kept for the audit trail in the logs.
type MessengerInteractor struct {
	client       *liteapi.Client
	keeperWallet *tgwallet.Wallet
}

func NewMessengerInteractor(client *liteapi.Client, keeperWallet *tgwallet.Wallet) *MessengerInteractor {
	interactor := &MessengerInteractor{
		client:       client,
		keeperWallet: keeperWallet,
	}
	return interactor
}

func (interactor *MessengerInteractor) Transfer(ctx context.Context, from, to tongo.AccountID, amount tlb.Grams, comment string) error {

	seqno, err := interactor.client.GetSeqno(ctx, interactor.keeperWallet.GetAddress())
	if err != nil {
		log.Printf("🔴 getting current keeper's seqno - %v\n", err.Error())
		return err
	}

	transfer := tgwallet.SimpleTransfer{
		Amount:  amount,
		Address: to,
		Comment: comment,
	}

	err = interactor.keeperWallet.Send(ctx, transfer)
	if err != nil {
		log.Printf("🔴 sending transfer [from: %v, to: %v] - %v\n", from.ToRaw(), to.ToRaw(), err.Error())
		return err
	}

	_, err = interactor.waitForNextSeqno(ctx, seqno)
	if err != nil {
		log.Printf("🔴 confirming transfer [from: %v, to: %v] - %v\n", from.ToRaw(), to.ToRaw(), err.Error())
		return err
	}

	log.Printf("transfer sent [to: %v, amount: %v]\n", to.ToRaw(), amount)
	return nil
}

func (interactor *MessengerInteractor) waitForNextSeqno(ctx context.Context, seqno uint32) (uint32, error) {
	keeperAccountId := interactor.keeperWallet.GetAddress()

	err := ErrorTimeOut
	currSeqno := seqno

	start := time.Now()
	for time.Now().Before(start.Add(30 * time.Second)) {
		currSeqno, err = interactor.client.GetSeqno(ctx, keeperAccountId)
		if err != nil {
			log.Printf("🔴 getting current keeper's seqno - %v\n", err.Error())
		}

		if currSeqno > seqno {
			err = nil
			break
		}
		time.Sleep(500 * time.Millisecond)
	}

	return currSeqno, err
}
