/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"log"

	"github.com/dappuniversity/ico-irl/crowdsale"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func main() {
	contract := kalpsdk.Contract{IsPayableContract: true}
	contract.Logger = kalpsdk.NewLogger()
	crowdsaleChaincode, err := kalpsdk.NewChaincode(&crowdsale.SmartContract{Contract: contract})
	if err != nil {
		log.Panicf("Error creating crowdsale chaincode: %v", err)
	}

	if err := crowdsaleChaincode.Start(); err != nil {
		log.Panicf("Error starting crowdsale chaincode: %v", err)
	}
}
