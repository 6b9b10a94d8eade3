package settlement

import (
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/types"
)

var (
	ErrNoReceiverForAsset        = errors.New("no receiver declared for asset")
	ErrNoGiverForAsset           = errors.New("no giver declared for asset")
	ErrMultipleReceiversForAsset = errors.New("multiple receivers declared for asset")
	ErrFAABTotalsMismatch        = errors.New("FAAB given and received totals differ")
)

// ResolveTradeFlows maps a two-party proposal onto its asset flows: offered
// assets to the receiver, requested assets to the proposer, FAAB proposer to
// receiver.
func ResolveTradeFlows(p *types.TradeProposal) []types.AssetFlow {
	flows := make([]types.AssetFlow, 0,
		len(p.ProposedPlayers)+len(p.RequestedPlayers)+len(p.ProposedDraftPicks)+len(p.RequestedDraftPicks)+1)
	for _, it := range p.ProposedPlayers {
		flows = append(flows, types.AssetFlow{
			Kind:       types.AssetKindPlayer,
			FromTeamID: p.ProposingTeamID,
			ToTeamID:   p.ReceivingTeamID,
			PlayerID:   it.PlayerID,
		})
	}
	for _, it := range p.RequestedPlayers {
		flows = append(flows, types.AssetFlow{
			Kind:       types.AssetKindPlayer,
			FromTeamID: p.ReceivingTeamID,
			ToTeamID:   p.ProposingTeamID,
			PlayerID:   it.PlayerID,
		})
	}
	for i := range p.ProposedDraftPicks {
		pick := p.ProposedDraftPicks[i]
		flows = append(flows, types.AssetFlow{
			Kind:       types.AssetKindPick,
			FromTeamID: p.ProposingTeamID,
			ToTeamID:   p.ReceivingTeamID,
			Pick:       &pick,
		})
	}
	for i := range p.RequestedDraftPicks {
		pick := p.RequestedDraftPicks[i]
		flows = append(flows, types.AssetFlow{
			Kind:       types.AssetKindPick,
			FromTeamID: p.ReceivingTeamID,
			ToTeamID:   p.ProposingTeamID,
			Pick:       &pick,
		})
	}
	if p.FAABAmount > 0 {
		flows = append(flows, types.AssetFlow{
			Kind:       types.AssetKindFAAB,
			FromTeamID: p.ProposingTeamID,
			ToTeamID:   p.ReceivingTeamID,
			FAABAmount: p.FAABAmount,
		})
	}
	return flows
}

// ResolveMultiTeamFlows computes the directed routing graph for a multi-team
// trade: for every given asset, the unique participant declaring it received.
// A player routed through an intermediate party still resolves to its
// ultimate receiver, since routing is declared on the receiving lists. The
// result is deterministic in the trade's team order.
func ResolveMultiTeamFlows(t *types.MultiTeamTrade) ([]types.AssetFlow, error) {
	if err := checkDeclaredReceives(t); err != nil {
		return nil, err
	}

	flows := make([]types.AssetFlow, 0, t.AssetCount())

	for _, giver := range t.Teams {
		for _, it := range giver.GivingPlayers {
			to, err := playerReceiver(t, giver.TeamID, it.PlayerID)
			if err != nil {
				return nil, err
			}
			flows = append(flows, types.AssetFlow{
				Kind:       types.AssetKindPlayer,
				FromTeamID: giver.TeamID,
				ToTeamID:   to,
				PlayerID:   it.PlayerID,
			})
		}
		for i := range giver.GivingDraftPicks {
			pick := giver.GivingDraftPicks[i]
			to, err := pickReceiver(t, giver.TeamID, pick)
			if err != nil {
				return nil, err
			}
			flows = append(flows, types.AssetFlow{
				Kind:       types.AssetKindPick,
				FromTeamID: giver.TeamID,
				ToTeamID:   to,
				Pick:       &pick,
			})
		}
	}

	faabFlows, err := resolveFAABFlows(t)
	if err != nil {
		return nil, err
	}
	return append(flows, faabFlows...), nil
}

// checkDeclaredReceives rejects any receiving entry that matches nothing
// another participant gives. Without it a phantom receive would satisfy the
// give-and-receive rule while resolving to no inbound flow at all.
func checkDeclaredReceives(t *types.MultiTeamTrade) error {
	for _, tm := range t.Teams {
		for _, it := range tm.ReceivingPlayers {
			if !playerIsGiven(t, tm.TeamID, it.PlayerID) {
				return errors.Wrapf(ErrNoGiverForAsset, "player %s received by team %s", it.PlayerID, tm.TeamID)
			}
		}
		for _, pk := range tm.ReceivingDraftPicks {
			if !pickIsGiven(t, tm.TeamID, pk) {
				return errors.Wrapf(ErrNoGiverForAsset, "pick %d round %d received by team %s", pk.Year, pk.Round, tm.TeamID)
			}
		}
	}
	return nil
}

func playerIsGiven(t *types.MultiTeamTrade, receiverID, playerID string) bool {
	for _, tm := range t.Teams {
		if tm.TeamID == receiverID {
			continue
		}
		for _, it := range tm.GivingPlayers {
			if it.PlayerID == playerID {
				return true
			}
		}
	}
	return false
}

func pickIsGiven(t *types.MultiTeamTrade, receiverID string, pick types.DraftPickItem) bool {
	for _, tm := range t.Teams {
		if tm.TeamID == receiverID {
			continue
		}
		for _, pk := range tm.GivingDraftPicks {
			if samePick(pk, pick) {
				return true
			}
		}
	}
	return false
}

func playerReceiver(t *types.MultiTeamTrade, giverID, playerID string) (string, error) {
	to := ""
	for _, tm := range t.Teams {
		if tm.TeamID == giverID {
			continue
		}
		for _, it := range tm.ReceivingPlayers {
			if it.PlayerID != playerID {
				continue
			}
			if to != "" {
				return "", errors.Wrapf(ErrMultipleReceiversForAsset, "player %s", playerID)
			}
			to = tm.TeamID
		}
	}
	if to == "" {
		return "", errors.Wrapf(ErrNoReceiverForAsset, "player %s", playerID)
	}
	return to, nil
}

func samePick(a, b types.DraftPickItem) bool {
	return a.Year == b.Year && a.Round == b.Round && a.OriginalTeamID == b.OriginalTeamID
}

func pickReceiver(t *types.MultiTeamTrade, giverID string, pick types.DraftPickItem) (string, error) {
	to := ""
	for _, tm := range t.Teams {
		if tm.TeamID == giverID {
			continue
		}
		for _, p := range tm.ReceivingDraftPicks {
			if !samePick(p, pick) {
				continue
			}
			if to != "" {
				return "", errors.Wrapf(ErrMultipleReceiversForAsset, "pick %d round %d", pick.Year, pick.Round)
			}
			to = tm.TeamID
		}
	}
	if to == "" {
		return "", errors.Wrapf(ErrNoReceiverForAsset, "pick %d round %d", pick.Year, pick.Round)
	}
	return to, nil
}

type faabCredit struct {
	teamID string
	amount uint64
}

// resolveFAABFlows allocates FAAB from givers to receivers greedily in team
// order. Totals must match exactly, amounts are split across receivers where
// needed and never route back to the giver itself.
func resolveFAABFlows(t *types.MultiTeamTrade) ([]types.AssetFlow, error) {
	givingTotal, receivingTotal := uint64(0), uint64(0)
	for _, tm := range t.Teams {
		givingTotal += tm.FAABGiving
		receivingTotal += tm.FAABReceiving
	}
	if givingTotal != receivingTotal {
		return nil, ErrFAABTotalsMismatch
	}
	if givingTotal == 0 {
		return nil, nil
	}

	receivers := []faabCredit{}
	for _, tm := range t.Teams {
		if tm.FAABReceiving > 0 {
			receivers = append(receivers, faabCredit{tm.TeamID, tm.FAABReceiving})
		}
	}

	flows := []types.AssetFlow{}
	for _, tm := range t.Teams {
		remaining := tm.FAABGiving
		for remaining > 0 {
			r := nextFAABReceiver(receivers, tm.TeamID)
			if r == nil {
				return nil, errors.Wrapf(ErrNoReceiverForAsset, "%d FAAB from team %s", remaining, tm.TeamID)
			}
			amount := remaining
			if r.amount < amount {
				amount = r.amount
			}
			flows = append(flows, types.AssetFlow{
				Kind:       types.AssetKindFAAB,
				FromTeamID: tm.TeamID,
				ToTeamID:   r.teamID,
				FAABAmount: amount,
			})
			remaining -= amount
			r.amount -= amount
		}
	}
	return flows, nil
}

// nextFAABReceiver is the first receiver with capacity left other than the
// giver itself.
func nextFAABReceiver(receivers []faabCredit, giverID string) *faabCredit {
	for i := range receivers {
		if receivers[i].amount > 0 && receivers[i].teamID != giverID {
			return &receivers[i]
		}
	}
	return nil
}
