package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"jarkeeper/domain"
	"jarkeeper/domain/config"
	"jarkeeper/infrastructure/dbhandler"
	"jarkeeper/interface/exporter"
	"jarkeeper/interface/notifier"
	"jarkeeper/interface/repository"
	"jarkeeper/usecase"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/liteapi"
	"github.com/tonkeeper/tongo/wallet"
)

func defaultDependencyInject() {
	var err error
	dbURI := config.GetDbUri()
	dbPool, err = sql.Open("postgres", dbURI)
	if err != nil {
		log.Fatal(err)
	}
	dbPool.SetMaxOpenConns(20)
	dbPool.SetMaxIdleConns(5)
	dbPool.SetConnMaxIdleTime(1 * time.Minute)
	dbPool.SetConnMaxLifetime(4 * time.Hour)

	dbHandler := dbhandler.DBHandler{DB: dbPool}

	switch strings.ToLower(config.GetNetwork()) {
	case config.MainNetwork:
		tongoClient, err = liteapi.NewClientWithDefaultMainnet()
	case config.TestNetwork:
		tongoClient, err = liteapi.NewClientWithDefaultTestnet()
	default:
		fmt.Printf("⛔️ Configuration parameter 'network' must be either 'mainnet' or 'testnet' only.")
		return
	}

	if err != nil {
		log.Fatal("Unable to create tongo client: ", err)
	}

	keeperWallet, err = wallet.New(config.GetKeeperWalletPrivateKey(), wallet.V4R2, 0, nil, tongoClient)
	if err != nil {
		log.Fatalf("Unable to connect to keeper wallet - %v\n", err.Error())
		return
	}

	var jarNotifier domain.Notifier
	if config.GetRelayUrl() != "" {
		jarNotifier, err = notifier.NewNostrNotifier(config.GetRelayUrl(), config.GetRelaySecretKey())
		if err != nil {
			log.Fatalf("Unable to connect to notification relay - %v\n", err.Error())
			return
		}
	} else {
		jarNotifier = notifier.LogNotifier{}
	}

	exporter.Init()

	jarRepository := repository.NewJarRepository(dbHandler)
	messengerInteractor = usecase.NewMessengerInteractor(tongoClient, &keeperWallet)
	jarInteractor = usecase.NewJarInteractor(config.GetOwnerAccountId(),
		jarRepository, messengerInteractor, jarNotifier, config.GetWithdrawLimit())
}

// callerId resolves the verified identity behind every keeper-initiated
// operation: the account the keeper wallet signs for.
func callerId() tongo.AccountID {
	return keeperWallet.GetAddress()
}

var dbPool *sql.DB
var tongoClient *liteapi.Client
var keeperWallet wallet.Wallet
var messengerInteractor *usecase.MessengerInteractor
var jarInteractor *usecase.JarInteractor
