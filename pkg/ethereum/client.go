// Package ethereum implements the chain boundary: balance and code reads,
// proxy activation and fund routing transactions, and permission lookups.
package ethereum

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/routelabs/sweep-middleware/pkg/config"
	"github.com/routelabs/sweep-middleware/pkg/derive"
	"github.com/routelabs/sweep-middleware/pkg/ethereum/contracts"
)

// Client represents an Ethereum client
type Client struct {
	config     *config.EthereumConfig
	client     *ethclient.Client
	privateKey *ecdsa.PrivateKey
	address    common.Address
	logger     *zap.Logger

	deployerAddress common.Address
	initCodeHash    common.Hash
	deployer        *contracts.DeterministicProxyDeployer
	storage         *contracts.FundRouterStorage
	routerABI       *abi.ABI

	breaker *gobreaker.CircuitBreaker[any]
}

// NewClient creates a new Ethereum client
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	deployerAddress := common.HexToAddress(cfg.DeployerContract)
	deployer, err := contracts.NewDeterministicProxyDeployer(deployerAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployer contract: %w", err)
	}

	storage, err := contracts.NewFundRouterStorage(common.HexToAddress(cfg.StorageContract), client)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage contract: %w", err)
	}

	routerABI, err := contracts.FundRouterMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse router ABI: %w", err)
	}

	initCodeHash, err := derive.HashFromHex(cfg.InitCodeHash)
	if err != nil {
		return nil, fmt.Errorf("invalid init code hash: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "eth-read",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("deployer_contract", deployerAddress.Hex()),
		zap.String("operator_address", address.Hex()))

	return &Client{
		config:          cfg,
		client:          client,
		privateKey:      privateKey,
		address:         address,
		logger:          logger,
		deployerAddress: deployerAddress,
		initCodeHash:    initCodeHash,
		deployer:        deployer,
		storage:         storage,
		routerABI:       routerABI,
		breaker:         breaker,
	}, nil
}

// Close closes the Ethereum client
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// SignerAddress returns the operator address used for all calls and txs
func (c *Client) SignerAddress() common.Address {
	return c.address
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	chainID := big.NewInt(c.config.ChainID)

	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	nonce, err := c.client.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Context = ctx
	auth.Nonce = big.NewInt(int64(nonce))
	auth.GasLimit = c.config.GasLimit

	if c.config.MaxGasPrice != "" {
		maxGasPrice := new(big.Int)
		maxGasPrice.SetString(c.config.MaxGasPrice, 10)

		gasPrice, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// read funnels view calls through the breaker with a per-call timeout. Any
// failure here is a transport problem, not a revert.
func (c *Client) read(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	out, err := c.breaker.Execute(func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
		defer cancel()
		return fn(callCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChainUnavailable, err)
	}
	return out, nil
}

// BalanceAt returns the ETH balance of addr in wei
func (c *Client) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	out, err := c.read(ctx, func(ctx context.Context) (any, error) {
		return c.client.BalanceAt(ctx, addr, nil)
	})
	if err != nil {
		return nil, err
	}
	return out.(*big.Int), nil
}

// TokenBalance returns the ERC20 balance of holder for the given token
func (c *Client) TokenBalance(ctx context.Context, token, holder common.Address) (*big.Int, error) {
	out, err := c.read(ctx, func(ctx context.Context) (any, error) {
		erc20, err := contracts.NewErc20Caller(token, c.client)
		if err != nil {
			return nil, err
		}
		return erc20.BalanceOf(&bind.CallOpts{Context: ctx}, holder)
	})
	if err != nil {
		return nil, err
	}
	return out.(*big.Int), nil
}

// HasCode reports whether addr has deployed bytecode
func (c *Client) HasCode(ctx context.Context, addr common.Address) (bool, error) {
	out, err := c.read(ctx, func(ctx context.Context) (any, error) {
		return c.client.CodeAt(ctx, addr, nil)
	})
	if err != nil {
		return false, err
	}
	return len(out.([]byte)) > 0, nil
}

// PredictAddresses asks the deployer for the destination addresses of the
// given request salts, as if the operator were the caller.
func (c *Client) PredictAddresses(ctx context.Context, salts [][32]byte) ([]common.Address, error) {
	out, err := c.read(ctx, func(ctx context.Context) (any, error) {
		return c.deployer.CalculateDestinationAddresses(&bind.CallOpts{
			Context: ctx,
			From:    c.address,
		}, salts)
	})
	if err != nil {
		return nil, err
	}
	return out.([]common.Address), nil
}

// IsAllowedCaller checks bit0 of the on-chain permission mask for addr
func (c *Client) IsAllowedCaller(ctx context.Context, addr common.Address) (bool, error) {
	out, err := c.read(ctx, func(ctx context.Context) (any, error) {
		return c.storage.IsAllowedCaller(&bind.CallOpts{Context: ctx}, addr)
	})
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// IsAllowedTreasury checks bit1 of the on-chain permission mask for addr
func (c *Client) IsAllowedTreasury(ctx context.Context, addr common.Address) (bool, error) {
	out, err := c.read(ctx, func(ctx context.Context) (any, error) {
		return c.storage.IsAllowedTreasury(&bind.CallOpts{Context: ctx}, addr)
	})
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// VerifyDerivation cross-checks the local CREATE2 prediction against the
// deployer contract on a probe salt. A mismatch means the configured init
// code hash no longer matches the deployed proxy implementation, which would
// make every locally derived address wrong.
func (c *Client) VerifyDerivation(ctx context.Context) error {
	var probe [32]byte
	if _, err := rand.Read(probe[:]); err != nil {
		return fmt.Errorf("failed to generate probe salt: %w", err)
	}

	local := derive.ProxyAddress(derive.Salt(probe, c.address), c.deployerAddress, c.initCodeHash)

	onchain, err := c.PredictAddresses(ctx, [][32]byte{probe})
	if err != nil {
		return fmt.Errorf("failed to predict probe address: %w", err)
	}
	if len(onchain) != 1 {
		return fmt.Errorf("deployer returned %d addresses for one salt", len(onchain))
	}
	if onchain[0] != local {
		return fmt.Errorf("derivation mismatch: local %s vs on-chain %s, check init_code_hash",
			local.Hex(), onchain[0].Hex())
	}

	c.logger.Info("Address derivation verified",
		zap.String("probe_address", local.Hex()))
	return nil
}

// ActivateProxies deploys the proxies for the given request salts and waits
// for the transaction to be mined. Already deployed salts must be filtered
// out by the caller; deploying twice reverts.
func (c *Client) ActivateProxies(ctx context.Context, salts [][32]byte) (common.Hash, error) {
	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}

	tx, err := c.deployer.DeployMultiple(auth, salts)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit deploy transaction: %w", err)
	}

	c.logger.Info("Proxy activation submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Int("salt_count", len(salts)))

	if err := c.waitMined(ctx, tx.Hash()); err != nil {
		return tx.Hash(), err
	}
	return tx.Hash(), nil
}

// TransferFunds calls transferFunds on the given proxy, moving etherAmount
// wei plus the listed token amounts to the treasury. The call is simulated
// first so custom-error reverts surface with their names instead of a bare
// failed-receipt status.
func (c *Client) TransferFunds(
	ctx context.Context,
	proxy common.Address,
	etherAmount *big.Int,
	tokens []common.Address,
	amounts []*big.Int,
	treasury common.Address,
) (common.Hash, error) {
	calldata, err := c.routerABI.Pack("transferFunds", etherAmount, tokens, amounts, treasury)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack transferFunds: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()
	if _, err := c.client.CallContract(callCtx, goethereum.CallMsg{
		From: c.address,
		To:   &proxy,
		Data: calldata,
	}, nil); err != nil {
		return common.Hash{}, c.decodeRevert(err)
	}

	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}

	router, err := contracts.NewFundRouterTransactor(proxy, c.client)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to bind proxy %s: %w", proxy.Hex(), err)
	}

	tx, err := router.TransferFunds(auth, etherAmount, tokens, amounts, treasury)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit transferFunds: %w", c.decodeRevert(err))
	}

	c.logger.Info("Fund transfer submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("proxy", proxy.Hex()),
		zap.String("ether_amount", etherAmount.String()))

	if err := c.waitMined(ctx, tx.Hash()); err != nil {
		return tx.Hash(), err
	}
	return tx.Hash(), nil
}

// waitMined waits for the tx receipt, bounded by the confirmation timeout
func (c *Client) waitMined(ctx context.Context, txHash common.Hash) error {
	waitCtx, cancel := context.WithTimeout(ctx, c.config.ConfirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(waitCtx, txHash)
		if err == nil {
			if receipt.Status == 0 {
				return fmt.Errorf("transaction %s reverted", txHash.Hex())
			}
			return nil
		}
		if !errors.Is(err, goethereum.NotFound) {
			c.logger.Warn("Failed to fetch receipt, retrying",
				zap.String("tx_hash", txHash.Hex()),
				zap.Error(err))
		}

		select {
		case <-waitCtx.Done():
			return fmt.Errorf("timed out waiting for transaction %s: %w", txHash.Hex(), waitCtx.Err())
		case <-ticker.C:
		}
	}
}

// decodeRevert matches the revert data against the router's custom errors
func (c *Client) decodeRevert(err error) error {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return err
	}
	hexData, ok := dataErr.ErrorData().(string)
	if !ok {
		return err
	}
	data := common.FromHex(hexData)
	if len(data) < 4 {
		return err
	}
	for _, abiErr := range c.routerABI.Errors {
		if bytes.Equal(abiErr.ID.Bytes()[:4], data[:4]) {
			return &RevertError{Name: abiErr.Name}
		}
	}
	return err
}
