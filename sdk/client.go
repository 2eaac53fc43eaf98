package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/zkfairdomains/fns-metadata/schema"
	"gopkg.in/h2non/gentleman.v2"
)

// Client calls a running metadata service.
type Client struct {
	SCli *gentleman.Client
}

func New(metadataUrl string) *Client {
	return &Client{
		SCli: gentleman.New().URL(metadataUrl),
	}
}

// APIError is a non-200 reply; Message is the service's {message} text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resp failed; http code: %d, errMsg: %s", e.StatusCode, e.Message)
}

func apiError(statusCode int, body []byte) error {
	msg := gjson.GetBytes(body, "message")
	if msg.Type == gjson.String {
		return &APIError{StatusCode: statusCode, Message: msg.String()}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}

// GetMetadata returns the metadata for a token. placeholder is true when the service
// only knows the name exists on chain and has not indexed it yet.
func (c *Client) GetMetadata(network, contract, tokenId string) (meta *schema.Metadata, placeholder bool, err error) {
	req := c.SCli.Get()
	req.AddPath(fmt.Sprintf("/%s/%s/%s", network, contract, tokenId))
	resp, err := req.Send()
	if err != nil {
		return nil, false, err
	}
	defer resp.Close()

	body := resp.Bytes()
	if resp.StatusCode != http.StatusOK {
		return nil, false, apiError(resp.StatusCode, body)
	}

	raw := body
	if msg := gjson.GetBytes(body, "message"); msg.IsObject() {
		raw = []byte(msg.Raw)
		placeholder = true
	}
	meta = &schema.Metadata{}
	if err = json.Unmarshal(raw, meta); err != nil {
		return nil, false, err
	}
	return meta, placeholder, nil
}

func (c *Client) GetImage(network, contract, tokenId string) ([]byte, error) {
	req := c.SCli.Get()
	req.AddPath(fmt.Sprintf("/%s/%s/%s/image", network, contract, tokenId))
	resp, err := req.Send()
	if err != nil {
		return nil, err
	}
	defer resp.Close()
	body := resp.Bytes()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}
