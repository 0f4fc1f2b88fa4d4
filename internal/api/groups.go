package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"monedero/internal/core"
)

// Groups lists the groups the caller belongs to.
func (c *Client) Groups(ctx context.Context, p Pagination) ([]core.Group, error) {
	q := url.Values{}
	p.apply(q)

	var out []core.Group
	if err := c.getJSON(ctx, "api/groups/", q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatedGroups lists the groups the caller created.
func (c *Client) CreatedGroups(ctx context.Context, p Pagination) ([]core.Group, error) {
	q := url.Values{}
	p.apply(q)

	var out []core.Group
	if err := c.getJSON(ctx, "api/groups/created", q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Group fetches a group with its members.
func (c *Client) Group(ctx context.Context, id int64) (core.GroupDetail, error) {
	var out core.GroupDetail
	if err := c.getJSON(ctx, fmt.Sprintf("api/groups/%d", id), nil, true, &out); err != nil {
		return core.GroupDetail{}, err
	}
	return out, nil
}

// CreateGroup creates a group with the caller as admin.
func (c *Client) CreateGroup(ctx context.Context, in core.NewGroup) (core.Group, error) {
	var out core.Group
	if err := c.sendJSON(ctx, http.MethodPost, "api/groups/", in, &out, true); err != nil {
		return core.Group{}, err
	}
	return out, nil
}

// UpdateGroup applies a partial update to a group.
func (c *Client) UpdateGroup(ctx context.Context, id int64, patch core.GroupPatch) (core.Group, error) {
	var out core.Group
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("api/groups/%d", id), patch, &out, true); err != nil {
		return core.Group{}, err
	}
	return out, nil
}

// DeleteGroup removes a group.
func (c *Client) DeleteGroup(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("api/groups/%d", id))
}

// GroupMembers lists a group's members.
func (c *Client) GroupMembers(ctx context.Context, groupID int64) ([]core.GroupMember, error) {
	var out []core.GroupMember
	if err := c.getJSON(ctx, fmt.Sprintf("api/groups/%d/members", groupID), nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveGroupMember removes a member from a group.
func (c *Client) RemoveGroupMember(ctx context.Context, groupID, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("api/groups/%d/members/%d", groupID, userID))
}

// SetGroupMemberRole changes a member's role within a group.
func (c *Client) SetGroupMemberRole(ctx context.Context, groupID, userID int64, role core.GroupRole) (core.GroupMember, error) {
	q := url.Values{}
	q.Set("rol", string(role))

	var out core.GroupMember
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   fmt.Sprintf("api/groups/%d/members/%d/role", groupID, userID),
		query:  q,
		authed: true,
		out:    &out,
	})
	if err != nil {
		return core.GroupMember{}, err
	}
	return out, nil
}
