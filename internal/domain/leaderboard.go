package domain

import (
	"math/big"
	"sort"
)

// LeaderboardLimit caps the number of ranked entries.
const LeaderboardLimit = 100

// LeaderboardEntry is one ranked row. TotalRewards is a base-10 wei string so
// the value survives JSON without floating-point loss.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	WalletAddress string `json:"walletAddress"`
	JourneyCount  int    `json:"journeyCount"`
	TotalRewards  string `json:"totalRewards"`
}

// RankLeaderboard sums rewards per wallet with exact integer arithmetic and
// returns the top limit wallets ordered by total reward descending, wallet
// address ascending on ties. Ranks are 1..N with no gaps.
func RankLeaderboard(rewards []JourneyReward, limit int) []LeaderboardEntry {
	type tally struct {
		wallet string
		count  int
		total  *big.Int
	}

	byWallet := make(map[string]*tally)
	for _, r := range rewards {
		t, ok := byWallet[r.WalletAddress]
		if !ok {
			t = &tally{wallet: r.WalletAddress, total: new(big.Int)}
			byWallet[r.WalletAddress] = t
		}
		t.count++
		if r.Reward != nil {
			t.total.Add(t.total, r.Reward)
		}
	}

	tallies := make([]*tally, 0, len(byWallet))
	for _, t := range byWallet {
		tallies = append(tallies, t)
	}
	// Sort the full set before truncating so the cap keeps the true top N.
	sort.Slice(tallies, func(i, j int) bool {
		if c := tallies[i].total.Cmp(tallies[j].total); c != 0 {
			return c > 0
		}
		return tallies[i].wallet < tallies[j].wallet
	})
	if limit >= 0 && len(tallies) > limit {
		tallies = tallies[:limit]
	}

	entries := make([]LeaderboardEntry, len(tallies))
	for i, t := range tallies {
		entries[i] = LeaderboardEntry{
			Rank:          i + 1,
			WalletAddress: t.wallet,
			JourneyCount:  t.count,
			TotalRewards:  t.total.String(),
		}
	}
	return entries
}
