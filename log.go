package fnsmetadata

import "github.com/zkfairdomains/fns-metadata/common"

var log = common.NewLog("fns-metadata")
