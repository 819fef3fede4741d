package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/metrics"
	"wallet_export/internal/pkg/utils"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/time/rate"
)

// EVMClient implements port.BlockchainClient for EVM-compatible chains such as Ronin.
type EVMClient struct {
	ethClient      *ethclient.Client
	netDef         entity.NetworkDefinition
	rpcCallTimeout time.Duration
	limiter        *rate.Limiter
	maxBatchSize   int
}

// EVMClientOptions tunes the per-call behaviour of an EVMClient.
type EVMClientOptions struct {
	ConnectionTimeout time.Duration
	RPCCallTimeout    time.Duration
	RateLimit         float64 // calls per second; <= 0 disables limiting
	BurstLimit        int
	MaxBatchSize      int
}

// NewEVMClient dials the network's primary RPC URL, falling back to the others in order.
func NewEVMClient(ctx context.Context, netDef entity.NetworkDefinition, opts EVMClientOptions) (port.BlockchainClient, error) {
	rpcURLs := append([]string{netDef.PrimaryRPCURL}, netDef.FallbackRPCURLs...)
	var lastErr error

	for _, rpcURL := range rpcURLs {
		if rpcURL == "" {
			continue
		}
		dialCtx, cancel := context.WithTimeout(ctx, opts.ConnectionTimeout)
		ethClient, err := ethclient.DialContext(dialCtx, rpcURL)
		cancel()

		if err == nil {
			return newEVMClient(ethClient, netDef, opts), nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no RPC URL configured")
	}
	return nil, fmt.Errorf("%w: all RPC connection attempts failed for network %s: %w", entity.ErrChainQuery, netDef.Name, lastErr)
}

func newEVMClient(ethClient *ethclient.Client, netDef entity.NetworkDefinition, opts EVMClientOptions) *EVMClient {
	initParsedABIs()

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.BurstLimit
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	if opts.RPCCallTimeout <= 0 {
		opts.RPCCallTimeout = 10 * time.Second
	}

	return &EVMClient{
		ethClient:      ethClient,
		netDef:         netDef,
		rpcCallTimeout: opts.RPCCallTimeout,
		limiter:        limiter,
		maxBatchSize:   opts.MaxBatchSize,
	}
}

// BalanceOfERC1155 implements port.BlockchainClient.
func (c *EVMClient) BalanceOfERC1155(ctx context.Context, contract, owner string, tokenID uint64) (balance *big.Int, err error) {
	start := time.Now()
	defer func() { metrics.CollectChainCall("erc1155_balanceOf", err, start) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", entity.ErrChainQuery, err)
	}

	data, err := parsedERC1155ABI.Pack("balanceOf", common.HexToAddress(owner), new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, fmt.Errorf("%w: pack balanceOf(%s, %d): %w", entity.ErrChainQuery, owner, tokenID, err)
	}

	to := common.HexToAddress(contract)
	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	result, err := c.ethClient.CallContract(callCtx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: balanceOf(%s, %d) on %s (%s): %w", entity.ErrChainQuery, owner, tokenID, contract, c.netDef.Name, err)
	}

	var out *big.Int
	if err := parsedERC1155ABI.UnpackIntoInterface(&out, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("%w: unpack balanceOf(%s, %d) on %s: %w. Raw: %s", entity.ErrChainQuery, owner, tokenID, contract, err, hexutil.Encode(result))
	}
	return out, nil
}

// GetBalances fetches native and ERC20 balances using JSON-RPC batch requests.
func (c *EVMClient) GetBalances(ctx context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error) {
	results := make([]entity.BalanceResultItem, len(requests))
	if len(requests) == 0 {
		return results, nil
	}

	batchSize := c.maxBatchSize
	if batchSize <= 0 {
		batchSize = len(requests)
	}

	for offset, chunk := range utils.Chunk(requests, batchSize) {
		if err := c.getBalancesBatch(ctx, chunk, results[offset*batchSize:offset*batchSize+len(chunk)]); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (c *EVMClient) getBalancesBatch(ctx context.Context, requests []entity.BalanceRequestItem, results []entity.BalanceResultItem) (err error) {
	start := time.Now()
	defer func() { metrics.CollectChainCall("batch", err, start) }()

	batchElems := make([]rpc.BatchElem, len(requests))
	for i, reqItem := range requests {
		results[i] = entity.BalanceResultItem{
			Token:    reqItem.Token,
			IsNative: reqItem.Type == entity.NativeBalanceRequest,
		}

		switch reqItem.Type {
		case entity.NativeBalanceRequest:
			batchElems[i] = rpc.BatchElem{
				Method: "eth_getBalance",
				Args:   []interface{}{common.HexToAddress(reqItem.WalletAddress), "latest"},
				Result: new(hexutil.Big),
			}
		case entity.TokenBalanceRequest:
			callData, packErr := parsedERC20ABI.Pack("balanceOf", common.HexToAddress(reqItem.WalletAddress))
			if packErr != nil {
				return fmt.Errorf("%w: pack balanceOf for %s: %w", entity.ErrChainQuery, reqItem.Token.Symbol, packErr)
			}
			batchElems[i] = rpc.BatchElem{
				Method: "eth_call",
				Args: []interface{}{map[string]interface{}{
					"to":   common.HexToAddress(reqItem.Token.Address),
					"data": hexutil.Bytes(callData),
				}, "latest"},
				Result: new(hexutil.Bytes),
			}
		default:
			return fmt.Errorf("%w: unknown balance request type %v for %s", entity.ErrChainQuery, reqItem.Type, reqItem.Token.Symbol)
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", entity.ErrChainQuery, err)
	}

	rpcCallCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	if err := c.ethClient.Client().BatchCallContext(rpcCallCtx, batchElems); err != nil {
		return fmt.Errorf("%w: RPC batch call on %s failed: %w", entity.ErrChainQuery, c.netDef.Name, err)
	}

	for i, elem := range batchElems {
		if elem.Error != nil {
			results[i].Error = fmt.Errorf("failed to fetch %s (%s) for wallet %s: %w",
				requests[i].Token.Symbol, requests[i].Token.Address, requests[i].WalletAddress, elem.Error)
			continue
		}

		switch result := elem.Result.(type) {
		case *hexutil.Big:
			results[i].Balance = (*big.Int)(result)
		case *hexutil.Bytes:
			if len(*result) == 0 {
				results[i].Balance = big.NewInt(0)
				break
			}
			var balance *big.Int
			if err := parsedERC20ABI.UnpackIntoInterface(&balance, "balanceOf", *result); err != nil {
				results[i].Error = fmt.Errorf("failed to unpack balanceOf result for %s: %w. Raw: %s", requests[i].Token.Symbol, err, hexutil.Encode(*result))
				continue
			}
			results[i].Balance = balance
		}

		if results[i].Balance == nil {
			results[i].Balance = big.NewInt(0)
		}
		results[i].FormattedBalance = utils.FormatBigInt(results[i].Balance, requests[i].Token.Decimals)
	}
	return nil
}
